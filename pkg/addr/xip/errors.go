package xip

import "errors"

// 预定义错误变量，支持 errors.Is 判断。
var (
	// ErrParse 表示无法解析的 IP 地址文本。
	ErrParse = errors.New("xip: invalid IP address")

	// ErrRender 表示具体地址无法渲染为文本。
	// 防御性错误：正确构造的 Addr 不会触发（详见 doc.go 设计决策）。
	ErrRender = errors.New("xip: address cannot be rendered")

	// ErrUnspecified 表示操作要求具体地址族，但收到了 Unspec 变体
	// 或非具体的外部地址值。
	ErrUnspecified = errors.New("xip: unspecified address")

	// ErrVersionMismatch 表示二元运算的两个操作数地址族不一致。
	ErrVersionMismatch = errors.New("xip: IP version mismatch")

	// ErrMask 表示无效的网络掩码（如非连续掩码 "255.0.255.0"）。
	ErrMask = errors.New("xip: invalid netmask")

	// ErrNilReceiver 表示对 nil 接收者调用反序列化方法。
	ErrNilReceiver = errors.New("xip: nil receiver")
)
