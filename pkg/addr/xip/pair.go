package xip

import (
	"fmt"
	"math/bits"
	"net/netip"
	"strings"

	"go4.org/netipx"
)

// AddrMaskPair 将地址与其网络掩码配对。
//
// 纯聚合类型：构造时不校验两个成员的地址族一致性（与显示无关），
// 一致性约束由掩码运算方法（[AddrMaskPair.Network] 等）在调用时施加。
type AddrMaskPair struct {
	Addr    Addr
	Netmask Addr
}

// ParsePair 解析 "addr/netmask" 形式的配对文本，
// 如 "10.0.0.5/255.0.0.0" 或 "2001:db8::1/ffff:ffff::"。
// 两侧各自按 [Parse] 解析；缺少 "/" 分隔符返回 [ErrParse]。
func ParsePair(s string) (AddrMaskPair, error) {
	s = strings.TrimSpace(s)
	idx := strings.Index(s, "/")
	if idx < 0 {
		return AddrMaskPair{}, fmt.Errorf("%w: missing '/' in pair %q", ErrParse, s)
	}
	addr, err := ParseNamed("address", s[:idx])
	if err != nil {
		return AddrMaskPair{}, err
	}
	mask, err := ParseNamed("netmask", s[idx+1:])
	if err != nil {
		return AddrMaskPair{}, err
	}
	return AddrMaskPair{Addr: addr, Netmask: mask}, nil
}

// String 返回 "addr/netmask" 形式的显示文本。
func (p AddrMaskPair) String() string {
	return p.Addr.String() + "/" + p.Netmask.String()
}

// Render 渲染 "addr/netmask" 文本，传播成员的渲染错误。
func (p AddrMaskPair) Render() (string, error) {
	addr, err := p.Addr.Render()
	if err != nil {
		return "", err
	}
	mask, err := p.Netmask.Render()
	if err != nil {
		return "", err
	}
	return addr + "/" + mask, nil
}

// Network 返回网络地址（Addr AND Netmask）。
// 地址族不一致返回 [ErrVersionMismatch]，Unspec 成员返回 [ErrUnspecified]。
func (p AddrMaskPair) Network() (Addr, error) {
	return p.Addr.And(p.Netmask)
}

// Broadcast 返回定向广播地址（网络地址 OR 主机位）。
// 对 IPv6 没有广播语义，但运算本身对两个地址族都有定义，
// V6 配对返回掩码块的最后一个地址。
func (p AddrMaskPair) Broadcast() (Addr, error) {
	network, err := p.Network()
	if err != nil {
		return Addr{}, err
	}
	return network.Or(p.Netmask.inverted())
}

// MaskBits 返回掩码的前缀长度。
// 非连续掩码（如 255.0.255.0）返回 [ErrMask]，Unspec 掩码返回 [ErrUnspecified]。
func (p AddrMaskPair) MaskBits() (int, error) {
	if p.Netmask.ver == Unspec {
		return 0, ErrUnspecified
	}
	b := p.Netmask.ip.AsSlice()
	ones := 0
	rest := false
	for _, octet := range b {
		if rest && octet != 0 {
			return 0, fmt.Errorf("%w: non-contiguous mask %s", ErrMask, p.Netmask)
		}
		if rest {
			continue
		}
		n := bits.LeadingZeros8(^octet)
		ones += n
		if n < 8 {
			// 本字节出现首个 0 位之后不允许再有 1 位
			if octet<<n != 0 {
				return 0, fmt.Errorf("%w: non-contiguous mask %s", ErrMask, p.Netmask)
			}
			rest = true
		}
	}
	return ones, nil
}

// Prefix 将配对转换为 CIDR 前缀（网络地址 + 前缀长度）。
// 要求掩码连续且与地址同族。
func (p AddrMaskPair) Prefix() (netip.Prefix, error) {
	ones, err := p.MaskBits()
	if err != nil {
		return netip.Prefix{}, err
	}
	network, err := p.Network()
	if err != nil {
		return netip.Prefix{}, err
	}
	return netip.PrefixFrom(network.ip, ones), nil
}

// Range 返回掩码块覆盖的地址范围（网络地址到块内最后一个地址）。
// 约束与 [AddrMaskPair.Prefix] 相同。
func (p AddrMaskPair) Range() (netipx.IPRange, error) {
	prefix, err := p.Prefix()
	if err != nil {
		return netipx.IPRange{}, err
	}
	return netipx.RangeOfPrefix(prefix), nil
}

// WirePair 是 AddrMaskPair 的序列化格式。
// 使用 JSON/BSON/YAML 标签 {"addr":"...","netmask":"..."}。
type WirePair struct {
	Addr    string `json:"addr" bson:"addr" yaml:"addr"`
	Netmask string `json:"netmask" bson:"netmask" yaml:"netmask"`
}

// WirePairFrom 从 AddrMaskPair 创建 WirePair，传播成员的渲染错误。
func WirePairFrom(p AddrMaskPair) (WirePair, error) {
	addr, err := p.Addr.Render()
	if err != nil {
		return WirePair{}, err
	}
	mask, err := p.Netmask.Render()
	if err != nil {
		return WirePair{}, err
	}
	return WirePair{Addr: addr, Netmask: mask}, nil
}

// ToPair 将 WirePair 转换回 AddrMaskPair。
func (w WirePair) ToPair() (AddrMaskPair, error) {
	addr, err := ParseNamed("address", w.Addr)
	if err != nil {
		return AddrMaskPair{}, err
	}
	mask, err := ParseNamed("netmask", w.Netmask)
	if err != nil {
		return AddrMaskPair{}, err
	}
	return AddrMaskPair{Addr: addr, Netmask: mask}, nil
}

// IsZero 报告 w 是否为零值。
func (w WirePair) IsZero() bool {
	return w.Addr == "" && w.Netmask == ""
}

// String 返回 "addr/netmask" 形式的显示文本。
func (w WirePair) String() string {
	return w.Addr + "/" + w.Netmask
}
