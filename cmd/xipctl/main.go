// xipctl 是 xip 地址库的命令行前端，用于校验 IP 地址文本和做掩码运算。
//
// 用法:
//
//	xipctl <命令> [命令参数]
//
// 命令:
//
//	validate <addr>...        归一化输出每个地址的规范文本形式
//	version <addr>            输出地址的协议版本 (IPv4/IPv6)
//	network -m <mask> <addr>  计算网络地址（addr AND mask）
//	broadcast -m <mask> <addr> 计算定向广播地址
//	check -c <file>           校验 YAML/JSON 配置中的地址/掩码配对
//	help                      显示帮助信息
//
// 退出码:
//
//	0: 命令执行成功
//	1: 命令执行失败（解析错误、地址族不一致等）
//	2: 参数错误（缺少必需参数、未知命令等）
//
// 示例:
//
//	xipctl validate 192.168.1.10 2001:DB8::1
//	xipctl network -m 255.255.255.0 192.168.1.10   # 192.168.1.0
//	xipctl broadcast -m 255.0.0.0 10.0.0.5         # 10.255.255.255
//	xipctl check -c pairs.yaml
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

// 版本信息（可通过 -ldflags 注入，例如:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.GitCommit=$(git rev-parse --short HEAD)"
//
// ）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run(os.Args))
}

// createApp 创建 CLI 应用。
func createApp() *cli.Command {
	return &cli.Command{
		Name:           "xipctl",
		Usage:          "IP 地址校验与掩码运算工具",
		Version:        fmt.Sprintf("%s (commit: %s)", Version, GitCommit),
		Commands:       createCommands(),
		DefaultCommand: "help",
		Authors: []any{
			"ipkit Team",
		},
		// 设计决策: 禁止 urfave/cli 直接调用 os.Exit，
		// 由 run() 统一处理退出码映射，确保与文档退出码契约一致。
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(os.Stderr, err)
			}
		},
	}
}

func run(args []string) int {
	app := createApp()

	if err := app.Run(context.Background(), args); err != nil {
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(os.Stderr, "参数错误: %v\n", usageErr.msg)
			return 2
		}
		// CLI 框架产生的参数错误（如未知 flag、未知命令）也返回退出码 2，
		// 与文档契约"参数错误 → 退出码 2"保持一致。
		if _, ok := err.(cli.ExitCoder); ok {
			return 2
		}
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		return 1
	}

	return 0
}
