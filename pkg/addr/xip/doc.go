// Package xip 提供版本多态的 IP 地址值类型。
//
// xip 基于 Go 标准库 [net/netip] 和社区库 [go4.org/netipx] 构建，
// 核心类型 [Addr] 在同一个值中承载 IPv4 或 IPv6 地址（或处于未指定状态），
// 提供文本解析、规范渲染和掩码运算所需的按位组合（AND/OR）。
//
// # 核心功能
//
//   - version.go: 版本标签 [Version]（Unspec/V4/V6）
//   - addr.go: [Addr] 值类型，构造、渲染、[Addr.And]/[Addr.Or] 按位组合
//   - parse.go: [Parse]/[ParseNamed] 文本解析、[Validate] 归一化
//   - convert.go: uint32 与 [net.IP] 桥接
//   - pair.go: [AddrMaskPair] 地址/掩码配对与派生运算（网络、广播、CIDR）
//   - encoding.go: JSON/Text/SQL 序列化支持
//
// # 快速示例
//
// 解析与掩码运算：
//
//	a := xip.MustParse("192.168.1.10")
//	m := xip.MustParse("255.255.255.0")
//	network, _ := a.And(m)
//	fmt.Println(network)  // 192.168.1.0
//
// 配对显示与派生：
//
//	p := xip.AddrMaskPair{Addr: a, Netmask: m}
//	fmt.Println(p)               // 192.168.1.10/255.255.255.0
//	bc, _ := p.Broadcast()       // 192.168.1.255
//	prefix, _ := p.Prefix()      // 192.168.1.0/24
//
// # 设计决策
//
//   - 标签显式存储：[Addr] 内部保存 [Version] 标签，每条构造路径显式设置，
//     构造后不再推断。二元运算要求两个操作数标签一致，不做任何隐式
//     跨族转换（[ErrVersionMismatch]）
//   - 零值即 Unspec 变体：默认构造的 Addr 未指定，参与 AND/OR 或
//     通用表示转换返回 [ErrUnspecified]
//   - 不可变值语义：所有运算返回新值；唯一例外是 [Addr.ResetFromUint32]，
//     原地重绑定为 IPv4 值。跨 goroutine 共享含该方法调用的 Addr
//     需要调用方自行同步
//   - 通用地址表示直接采用 [netip.Addr]：netip 属于标准库，无需再以
//     接口隔离一个外部依赖；版本判定委托给 netip 的分类
//   - IPv4-mapped IPv6（"::ffff:a.b.c.d"）保持 V6 标签和 16 字节位宽，
//     与解析器的分类一致。[FromNetIP] 例外：net.IP 的 16 字节 v4 形式
//     过于常见，先 Unmap 再分类
//   - 掩码运算要求连续掩码：[AddrMaskPair.MaskBits]/[AddrMaskPair.Prefix]
//     拒绝 "255.0.255.0" 这类非连续掩码（[ErrMask]）；
//     纯 AND/OR 组合（[Addr.And]/[Addr.Or]）不设此限制
//
// # 渲染错误（防御性路径）
//
// [Addr.Render] 对具体标签下底层值无效的状态返回 [ErrRender]。
// 该状态无法通过公开 API 构造（字段不可导出，所有构造路径都产出
// 有效值），保留此错误是为了让内部不变量破坏以可诊断的方式浮出，
// 而不是在渲染处静默产出空串。[Addr.String] 实现 [fmt.Stringer]，
// 不可失败，渲染失败时退化为 "invalid"。
//
// # 错误处理
//
// 预定义错误变量支持 errors.Is 判断，四类失败可分支处理：
//
//	_, err := xip.Parse("not-an-ip")
//	if errors.Is(err, xip.ErrParse) {
//	    // 输入边界处理
//	}
//
// [ErrUnspecified] 与 [ErrVersionMismatch] 属于调用契约违反，
// [ErrRender] 属于防御性内部错误，三者通常不应在运行时出现。
package xip
