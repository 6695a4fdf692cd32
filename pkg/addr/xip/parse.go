package xip

import (
	"fmt"
	"net/netip"
	"strings"
)

// Parse 解析 IP 地址字符串，返回带版本标签的 [Addr]。
//
// 接受 [netip.ParseAddr] 支持的规范文本形式：
//   - IPv4 点分十进制："192.168.1.10"
//   - IPv6 冒号十六进制："2001:db8::1"（含缩写与 zone ID）
//   - IPv4-mapped IPv6："::ffff:192.168.1.10"（保持 V6 标签）
//
// 输入会自动去除首尾空白。解析失败返回 [ErrParse]，错误文本携带原始输入。
func Parse(s string) (Addr, error) {
	return ParseNamed("", s)
}

// ParseNamed 类似 [Parse]，但携带调用方提供的诊断标签 name。
// name 仅用于错误文本（如区分 "local" 与 "remote" 两个配置项），
// 不参与解析本身。name 为空时与 [Parse] 行为一致。
func ParseNamed(name, s string) (Addr, error) {
	s = strings.TrimSpace(s)
	a, err := netip.ParseAddr(s)
	if err != nil {
		if name != "" {
			return Addr{}, fmt.Errorf("%w: %s %q: %v", ErrParse, name, s, err)
		}
		return Addr{}, fmt.Errorf("%w: %q: %v", ErrParse, s, err)
	}
	// netip.ParseAddr 成功即为具体地址，FromAddr 不会失败，
	// 这里仅复用其单一的版本判定路径。
	return FromAddr(a)
}

// MustParse 类似 [Parse]，但解析失败时 panic。
// 仅用于包级常量初始化或测试。
func MustParse(s string) Addr {
	a, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("xip.MustParse(%q): %v", s, err))
	}
	return a
}

// Validate 解析 s 并重新渲染为规范文本形式。
// 可用于归一化用户或配置提供的地址字符串：
//
//	s, err := xip.Validate("192.168.001.010")  // err: 前导零非法
//	s, err = xip.Validate("2001:DB8::1")       // "2001:db8::1"
//
// 解析失败返回 [ErrParse]；渲染失败返回 [ErrRender]（防御性，实际不可达）。
func Validate(s string) (string, error) {
	return ValidateNamed("", s)
}

// ValidateNamed 类似 [Validate]，但携带诊断标签 name（语义同 [ParseNamed]）。
func ValidateNamed(name, s string) (string, error) {
	a, err := ParseNamed(name, s)
	if err != nil {
		return "", err
	}
	return a.Render()
}
