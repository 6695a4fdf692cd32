package xip

import (
	"net/netip"
	"testing"
)

// =============================================================================
// 解析基准测试
// =============================================================================

func BenchmarkParse(b *testing.B) {
	b.Run("xip.Parse/v4", func(b *testing.B) {
		for b.Loop() {
			_, _ = Parse("192.168.1.10")
		}
	})
	b.Run("xip.Parse/v6", func(b *testing.B) {
		for b.Loop() {
			_, _ = Parse("2001:db8::1")
		}
	})
	// 对照：不带标签封装的标准库解析
	b.Run("netip.ParseAddr/v4", func(b *testing.B) {
		for b.Loop() {
			_, _ = netip.ParseAddr("192.168.1.10")
		}
	})
}

// =============================================================================
// 按位组合基准测试
// =============================================================================

func BenchmarkAnd(b *testing.B) {
	a4 := MustParse("192.168.1.10")
	m4 := MustParse("255.255.255.0")
	b.Run("v4", func(b *testing.B) {
		for b.Loop() {
			_, _ = a4.And(m4)
		}
	})

	a6 := MustParse("2001:db8::1")
	m6 := MustParse("ffff:ffff::")
	b.Run("v6", func(b *testing.B) {
		for b.Loop() {
			_, _ = a6.And(m6)
		}
	})
}

// =============================================================================
// 渲染基准测试
// =============================================================================

func BenchmarkRender(b *testing.B) {
	a4 := MustParse("192.168.1.10")
	a6 := MustParse("2001:db8::1")

	b.Run("v4", func(b *testing.B) {
		for b.Loop() {
			_, _ = a4.Render()
		}
	})
	b.Run("v6", func(b *testing.B) {
		for b.Loop() {
			_, _ = a6.Render()
		}
	})
	b.Run("unspec", func(b *testing.B) {
		var zero Addr
		for b.Loop() {
			_, _ = zero.Render()
		}
	})
}

// =============================================================================
// 配对派生运算基准测试
// =============================================================================

func BenchmarkPairNetwork(b *testing.B) {
	p := AddrMaskPair{
		Addr:    MustParse("192.168.1.10"),
		Netmask: MustParse("255.255.255.0"),
	}
	for b.Loop() {
		_, _ = p.Network()
	}
}
