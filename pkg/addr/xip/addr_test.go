package xip

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddrZeroValue(t *testing.T) {
	var a Addr
	assert.Equal(t, Unspec, a.Version())
	assert.True(t, a.IsUnspecified())
	assert.False(t, a.IsValid())
	assert.Equal(t, "UNSPEC", a.String())

	s, err := a.Render()
	require.NoError(t, err)
	assert.Equal(t, "UNSPEC", s)
}

func TestAddrFrom4From16(t *testing.T) {
	a := AddrFrom4([4]byte{192, 168, 1, 10})
	assert.Equal(t, V4, a.Version())
	assert.Equal(t, "192.168.1.10", a.String())

	b := AddrFrom16(netip.MustParseAddr("2001:db8::1").As16())
	assert.Equal(t, V6, b.Version())
	assert.Equal(t, "2001:db8::1", b.String())

	// IPv4-mapped 字节序列保持 V6 标签
	m := AddrFrom16(netip.MustParseAddr("::ffff:10.0.0.1").As16())
	assert.Equal(t, V6, m.Version())
	assert.Equal(t, "::ffff:10.0.0.1", m.String())
}

func TestFromAddr(t *testing.T) {
	a, err := FromAddr(netip.MustParseAddr("10.0.0.1"))
	require.NoError(t, err)
	assert.Equal(t, V4, a.Version())

	b, err := FromAddr(netip.MustParseAddr("::1"))
	require.NoError(t, err)
	assert.Equal(t, V6, b.Version())

	// 版本判定委托给解析器分类：4-in-6 归 V6
	m, err := FromAddr(netip.MustParseAddr("::ffff:10.0.0.1"))
	require.NoError(t, err)
	assert.Equal(t, V6, m.Version())

	// 非具体的通用值
	_, err = FromAddr(netip.Addr{})
	assert.ErrorIs(t, err, ErrUnspecified)
}

func TestNetipAddr(t *testing.T) {
	want := netip.MustParseAddr("2001:db8::1")
	a := MustParse("2001:db8::1")
	got, err := a.NetipAddr()
	require.NoError(t, err)
	assert.Equal(t, want, got)

	var zero Addr
	_, err = zero.NetipAddr()
	assert.ErrorIs(t, err, ErrUnspecified)
}

func TestIsUnspecified(t *testing.T) {
	assert.True(t, Addr{}.IsUnspecified())
	// 具体变体的全零哨兵值也视为未指定
	assert.True(t, MustParse("0.0.0.0").IsUnspecified())
	assert.True(t, MustParse("::").IsUnspecified())
	assert.False(t, MustParse("10.0.0.1").IsUnspecified())
	assert.False(t, MustParse("::1").IsUnspecified())
}

func TestAnd(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want string
	}{
		{name: "IPv4 netmask", a: "192.168.1.10", b: "255.255.255.0", want: "192.168.1.0"},
		{name: "IPv4 all-ones mask", a: "10.1.2.3", b: "255.255.255.255", want: "10.1.2.3"},
		{name: "IPv4 zero mask", a: "10.1.2.3", b: "0.0.0.0", want: "0.0.0.0"},
		{name: "IPv6 /32 mask", a: "2001:db8:aaaa::1", b: "ffff:ffff::", want: "2001:db8::"},
		{name: "IPv6 full mask", a: "2001:db8::1", b: "ffff:ffff:ffff:ffff:ffff:ffff:ffff:ffff", want: "2001:db8::1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MustParse(tt.a).And(MustParse(tt.b))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
			assert.Equal(t, MustParse(tt.a).Version(), got.Version())
		})
	}
}

func TestOr(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want string
	}{
		{name: "IPv4 host bits", a: "192.168.1.0", b: "0.0.0.255", want: "192.168.1.255"},
		{name: "IPv4 zero", a: "10.0.0.1", b: "0.0.0.0", want: "10.0.0.1"},
		{name: "IPv6 host bits", a: "2001:db8::", b: "::ffff", want: "2001:db8::ffff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MustParse(tt.a).Or(MustParse(tt.b))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestBitwiseVersionMismatch(t *testing.T) {
	v4 := MustParse("10.0.0.1")
	v6 := MustParse("2001:db8::1")

	_, err := v4.And(v6)
	assert.ErrorIs(t, err, ErrVersionMismatch)
	_, err = v6.And(v4)
	assert.ErrorIs(t, err, ErrVersionMismatch)
	_, err = v4.Or(v6)
	assert.ErrorIs(t, err, ErrVersionMismatch)

	// 纯 IPv4 与 IPv4-mapped IPv6 标签不同，同样拒绝
	mapped := MustParse("::ffff:10.0.0.1")
	_, err = v4.And(mapped)
	assert.ErrorIs(t, err, ErrVersionMismatch)

	// 具体变体与 Unspec 变体标签不同
	_, err = v4.And(Addr{})
	assert.ErrorIs(t, err, ErrVersionMismatch)
}

func TestBitwiseUnspecified(t *testing.T) {
	_, err := Addr{}.And(Addr{})
	assert.ErrorIs(t, err, ErrUnspecified)
	_, err = Addr{}.Or(Addr{})
	assert.ErrorIs(t, err, ErrUnspecified)
}

func TestBitwiseIdempotent(t *testing.T) {
	a := MustParse("192.168.1.10")
	m := MustParse("255.255.255.0")

	ab, err := a.And(m)
	require.NoError(t, err)
	abb, err := ab.And(m)
	require.NoError(t, err)
	assert.Equal(t, ab, abb)

	ob, err := a.Or(m)
	require.NoError(t, err)
	obb, err := ob.Or(m)
	require.NoError(t, err)
	assert.Equal(t, ob, obb)
}

func TestBitwiseDropsZone(t *testing.T) {
	// 按位组合在字节层面进行，zone ID 不参与也不保留
	a := MustParse("fe80::1%eth0")
	m := MustParse("ffff::")
	got, err := a.And(m)
	require.NoError(t, err)
	assert.Equal(t, "fe80::", got.String())
}

func TestResetFromUint32(t *testing.T) {
	// V6 变体重置后落入 V4 变体
	a := MustParse("2001:db8::1")
	a.ResetFromUint32(0xC0A8010A)
	assert.Equal(t, V4, a.Version())
	assert.Equal(t, "192.168.1.10", a.String())

	var zero Addr
	zero.ResetFromUint32(0)
	assert.Equal(t, V4, zero.Version())
	assert.Equal(t, "0.0.0.0", zero.String())
	assert.True(t, zero.IsUnspecified())
}

func TestCompare(t *testing.T) {
	assert.Equal(t, 0, MustParse("10.0.0.1").Compare(MustParse("10.0.0.1")))
	assert.Equal(t, -1, MustParse("10.0.0.1").Compare(MustParse("10.0.0.2")))
	assert.Equal(t, 1, MustParse("10.0.0.2").Compare(MustParse("10.0.0.1")))
	// 标签优先：Unspec < V4 < V6
	assert.Equal(t, -1, Addr{}.Compare(MustParse("0.0.0.0")))
	assert.Equal(t, -1, MustParse("255.255.255.255").Compare(MustParse("::")))
}

func TestAddrComparable(t *testing.T) {
	// 值语义：可比较、可作 map key
	a := MustParse("10.0.0.1")
	b := MustParse("10.0.0.1")
	assert.True(t, a == b)

	set := map[Addr]bool{a: true}
	assert.True(t, set[b])
}
