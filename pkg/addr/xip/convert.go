package xip

import (
	"encoding/binary"
	"fmt"
	"net"
	"net/netip"
)

// AddrFromUint32 从 IPv4 的 uint32 表示创建 V4 变体。
// 使用网络字节序（大端）。
func AddrFromUint32(v uint32) Addr {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return AddrFrom4(b)
}

// Uint32 返回 V4 变体的 uint32 表示（网络字节序）。
// 非 V4 变体返回 (0, false)。
func (a Addr) Uint32() (uint32, bool) {
	if a.ver != V4 {
		return 0, false
	}
	b := a.ip.As4()
	return binary.BigEndian.Uint32(b[:]), true
}

// FromNetIP 从旧标准库类型 [net.IP] 创建带标签的 Addr。
//
// 16 字节切片中的 IPv4-mapped 形式（net.ParseIP 对 IPv4 文本的常见输出）
// 会先 Unmap 再分类，得到 V4 标签，与 net.IP 调用方的地址族预期一致。
// nil 或空切片返回 [ErrUnspecified]，长度非法的切片返回 [ErrParse]。
func FromNetIP(ip net.IP) (Addr, error) {
	if len(ip) == 0 {
		return Addr{}, ErrUnspecified
	}
	a, ok := netip.AddrFromSlice(ip)
	if !ok {
		return Addr{}, fmt.Errorf("%w: invalid net.IP length %d", ErrParse, len(ip))
	}
	return FromAddr(a.Unmap())
}

// NetIP 返回 [net.IP] 表示。
// 返回新切片，修改不影响原值。Unspec 变体返回 nil。
func (a Addr) NetIP() net.IP {
	if a.ver == Unspec {
		return nil
	}
	return net.IP(a.ip.AsSlice())
}
