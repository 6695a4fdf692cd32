package xip

import "net/netip"

// Addr 表示版本多态的 IP 地址：同一个值类型可承载 IPv4 或 IPv6 地址，
// 也可以是未指定（Unspec）状态。
//
// Addr 是不可变值类型：
//   - 零值为 Unspec 变体，[Addr.IsUnspecified] 返回 true
//   - 可直接比较（==）和用作 map key
//   - 所有运算（[Addr.And]、[Addr.Or]）返回新值，唯一的例外是
//     [Addr.ResetFromUint32]，它原地重绑定为 IPv4 值
//
// 使用 [Parse]、[AddrFrom4]、[AddrFrom16] 或 [FromAddr] 创建具体地址：
//
//	a, err := xip.Parse("192.168.1.10")
//	m := xip.MustParse("255.255.255.0")
//	network, err := a.And(m)
type Addr struct {
	ip  netip.Addr
	ver Version
}

// AddrFrom4 从 4 字节数组创建 V4 变体。总是成功。
func AddrFrom4(b [4]byte) Addr {
	return Addr{ip: netip.AddrFrom4(b), ver: V4}
}

// AddrFrom16 从 16 字节数组创建 V6 变体。总是成功。
// IPv4-mapped 字节序列（::ffff:a.b.c.d）保持 16 字节形式和 V6 标签。
func AddrFrom16(b [16]byte) Addr {
	return Addr{ip: netip.AddrFrom16(b), ver: V6}
}

// FromAddr 从通用地址表示 [netip.Addr] 创建带标签的 Addr。
// 版本判定委托给 netip 的分类：Is4 → V4，其余有效地址 → V6
// （含 IPv4-mapped IPv6）。非具体地址（无效零值）返回 [ErrUnspecified]。
func FromAddr(a netip.Addr) (Addr, error) {
	switch {
	case a.Is4():
		return Addr{ip: a, ver: V4}, nil
	case a.IsValid():
		return Addr{ip: a, ver: V6}, nil
	default:
		return Addr{}, ErrUnspecified
	}
}

// NetipAddr 返回通用地址表示 [netip.Addr]。
// Unspec 变体返回 [ErrUnspecified]。
func (a Addr) NetipAddr() (netip.Addr, error) {
	if a.ver == Unspec {
		return netip.Addr{}, ErrUnspecified
	}
	return a.ip, nil
}

// Version 返回地址的版本标签。
func (a Addr) Version() Version {
	return a.ver
}

// Is4 报告 a 是否为 V4 变体。
func (a Addr) Is4() bool {
	return a.ver == V4
}

// Is6 报告 a 是否为 V6 变体。
func (a Addr) Is6() bool {
	return a.ver == V6
}

// IsValid 报告 a 是否承载具体地址（V4 或 V6 变体且底层值有效）。
func (a Addr) IsValid() bool {
	return a.ver != Unspec && a.ip.IsValid()
}

// IsUnspecified 报告 a 是否未指定。
// Unspec 变体返回 true；具体变体委托给底层值的全零判断
// （IPv4 的 0.0.0.0 或 IPv6 的 ::）。
func (a Addr) IsUnspecified() bool {
	switch a.ver {
	case V4, V6:
		return a.ip.IsUnspecified()
	default:
		return true
	}
}

// Compare 比较两个地址。先比较版本标签，再比较地址字节。
// 返回值：-1 (a < b), 0 (a == b), 1 (a > b)。
func (a Addr) Compare(b Addr) int {
	if a.ver != b.ver {
		if a.ver < b.ver {
			return -1
		}
		return 1
	}
	return a.ip.Compare(b.ip)
}

// Render 渲染地址的规范文本形式。
// Unspec 变体返回 "UNSPEC"。具体变体委托给 [netip.Addr.String]；
// 若具体标签下的底层值无效（仅可能由包内部误用产生），
// 返回 [ErrRender]（防御性路径，详见 doc.go）。
func (a Addr) Render() (string, error) {
	if a.ver == Unspec {
		return "UNSPEC", nil
	}
	if !a.ip.IsValid() {
		return "", ErrRender
	}
	return a.ip.String(), nil
}

// String 实现 [fmt.Stringer]。
// 与 [Addr.Render] 一致，但不可失败：渲染失败时返回 "invalid"。
func (a Addr) String() string {
	s, err := a.Render()
	if err != nil {
		return "invalid"
	}
	return s
}

// And 返回按位与的结果。用于掩码运算（地址 AND 掩码 → 网络地址）。
// 两个操作数的版本标签必须一致，否则返回 [ErrVersionMismatch]；
// 两个 Unspec 变体返回 [ErrUnspecified]。结果携带相同的标签。
func (a Addr) And(b Addr) (Addr, error) {
	if a.ver != b.ver {
		return Addr{}, ErrVersionMismatch
	}
	switch a.ver {
	case V4:
		x, y := a.ip.As4(), b.ip.As4()
		for i := range x {
			x[i] &= y[i]
		}
		return AddrFrom4(x), nil
	case V6:
		x, y := a.ip.As16(), b.ip.As16()
		for i := range x {
			x[i] &= y[i]
		}
		return AddrFrom16(x), nil
	default:
		return Addr{}, ErrUnspecified
	}
}

// Or 返回按位或的结果。用于派生地址运算（网络地址 OR 主机位 → 广播地址）。
// 约束与 [Addr.And] 相同。
func (a Addr) Or(b Addr) (Addr, error) {
	if a.ver != b.ver {
		return Addr{}, ErrVersionMismatch
	}
	switch a.ver {
	case V4:
		x, y := a.ip.As4(), b.ip.As4()
		for i := range x {
			x[i] |= y[i]
		}
		return AddrFrom4(x), nil
	case V6:
		x, y := a.ip.As16(), b.ip.As16()
		for i := range x {
			x[i] |= y[i]
		}
		return AddrFrom16(x), nil
	default:
		return Addr{}, ErrUnspecified
	}
}

// inverted 返回按位取反的结果（掩码 → 主机位）。
// 仅供包内掩码运算使用，调用方保证 a 为具体变体。
func (a Addr) inverted() Addr {
	switch a.ver {
	case V4:
		x := a.ip.As4()
		for i := range x {
			x[i] = ^x[i]
		}
		return AddrFrom4(x)
	case V6:
		x := a.ip.As16()
		for i := range x {
			x[i] = ^x[i]
		}
		return AddrFrom16(x)
	default:
		return Addr{}
	}
}

// ResetFromUint32 用 32 位整数（网络字节序）构造的 IPv4 值原地覆盖 a。
// 总是成功，且总是落入 V4 变体。这是 Addr 唯一的可变操作。
func (a *Addr) ResetFromUint32(raw uint32) {
	*a = AddrFromUint32(raw)
}
