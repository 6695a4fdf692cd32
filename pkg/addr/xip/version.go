package xip

// Version 表示 IP 协议版本标签。
// 标签在每条构造路径上显式设置，构造后不会被重新推断。
type Version uint8

const (
	// Unspec 表示未指定版本（默认变体）。
	Unspec Version = 0
	// V4 表示 IPv4。
	V4 Version = 4
	// V6 表示 IPv6。
	V6 Version = 6
)

// String 返回版本的字符串表示。
func (v Version) String() string {
	switch v {
	case V4:
		return "IPv4"
	case V6:
		return "IPv6"
	case Unspec:
		return "UNSPEC"
	default:
		return "unknown"
	}
}
