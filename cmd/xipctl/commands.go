package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/ipkit/pkg/addr/xip"
)

// usageError 表示调用方参数错误，run() 将其映射为退出码 2。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

// createCommands 创建所有子命令。
func createCommands() []*cli.Command {
	return []*cli.Command{
		createValidateCommand(),
		createVersionCommand(),
		createNetworkCommand(),
		createBroadcastCommand(),
		createCheckCommand(),
	}
}

// createValidateCommand 创建 validate 子命令。
func createValidateCommand() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Aliases:   []string{"v"},
		Usage:     "归一化输出每个地址的规范文本形式",
		ArgsUsage: "<addr>...",
		Action: func(_ context.Context, cmd *cli.Command) error {
			out, err := runValidate(cmd.Args().Slice())
			if err != nil {
				return err
			}
			fmt.Print(out)
			return nil
		},
	}
}

// createVersionCommand 创建 version 子命令（地址协议版本，区别于 --version）。
func createVersionCommand() *cli.Command {
	return &cli.Command{
		Name:      "version",
		Usage:     "输出地址的协议版本 (IPv4/IPv6)",
		ArgsUsage: "<addr>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			out, err := runVersion(cmd.Args().Slice())
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		},
	}
}

// createNetworkCommand 创建 network 子命令。
func createNetworkCommand() *cli.Command {
	return &cli.Command{
		Name:      "network",
		Aliases:   []string{"n"},
		Usage:     "计算网络地址（addr AND mask）",
		ArgsUsage: "<addr>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "mask",
				Aliases: []string{"m"},
				Usage:   "网络掩码（点分或冒号十六进制形式）",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			out, err := runNetwork(cmd.String("mask"), cmd.Args().Slice())
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		},
	}
}

// createBroadcastCommand 创建 broadcast 子命令。
func createBroadcastCommand() *cli.Command {
	return &cli.Command{
		Name:      "broadcast",
		Aliases:   []string{"b"},
		Usage:     "计算定向广播地址（网络地址 OR 主机位）",
		ArgsUsage: "<addr>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "mask",
				Aliases: []string{"m"},
				Usage:   "网络掩码（点分或冒号十六进制形式）",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			out, err := runBroadcast(cmd.String("mask"), cmd.Args().Slice())
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		},
	}
}

// createCheckCommand 创建 check 子命令。
func createCheckCommand() *cli.Command {
	return &cli.Command{
		Name:    "check",
		Aliases: []string{"c"},
		Usage:   "校验 YAML/JSON 配置中的地址/掩码配对",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "配对配置文件路径（.yaml/.yml/.json）",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			path := cmd.String("config")
			if path == "" {
				return &usageError{msg: "check 命令需要 --config 参数"}
			}
			pairs, err := loadPairs(path)
			if err != nil {
				return err
			}
			out, err := runCheck(pairs)
			if err != nil {
				return err
			}
			fmt.Print(out)
			return nil
		},
	}
}

// runValidate 归一化每个输入地址，每行输出一个规范文本形式。
func runValidate(args []string) (string, error) {
	if len(args) == 0 {
		return "", &usageError{msg: "validate 命令需要至少一个地址参数"}
	}
	var sb strings.Builder
	for _, arg := range args {
		s, err := xip.Validate(arg)
		if err != nil {
			return "", err
		}
		sb.WriteString(s)
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

// runVersion 输出单个地址的协议版本。
func runVersion(args []string) (string, error) {
	if len(args) != 1 {
		return "", &usageError{msg: "version 命令需要恰好一个地址参数"}
	}
	a, err := xip.Parse(args[0])
	if err != nil {
		return "", err
	}
	return a.Version().String(), nil
}

// runNetwork 计算 addr AND mask。
func runNetwork(mask string, args []string) (string, error) {
	p, err := pairFromArgs(mask, args)
	if err != nil {
		return "", err
	}
	network, err := p.Network()
	if err != nil {
		return "", err
	}
	return network.Render()
}

// runBroadcast 计算定向广播地址。
func runBroadcast(mask string, args []string) (string, error) {
	p, err := pairFromArgs(mask, args)
	if err != nil {
		return "", err
	}
	bc, err := p.Broadcast()
	if err != nil {
		return "", err
	}
	return bc.Render()
}

// runCheck 校验每个配对：成员可解析、地址族一致，并输出规范形式。
// 掩码连续时附带 CIDR 前缀；非连续掩码仅做一致性校验。
func runCheck(pairs []xip.AddrMaskPair) (string, error) {
	var sb strings.Builder
	for i, p := range pairs {
		network, err := p.Network()
		if err != nil {
			return "", fmt.Errorf("pair [%d] %s: %w", i, p, err)
		}
		line, err := p.Render()
		if err != nil {
			return "", fmt.Errorf("pair [%d]: %w", i, err)
		}
		sb.WriteString(line)
		if prefix, err := p.Prefix(); err == nil {
			sb.WriteString("  network=" + prefix.String())
		} else {
			netStr, renderErr := network.Render()
			if renderErr != nil {
				return "", fmt.Errorf("pair [%d]: %w", i, renderErr)
			}
			sb.WriteString("  network=" + netStr)
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(fmt.Sprintf("%d pair(s) ok\n", len(pairs)))
	return sb.String(), nil
}

// pairFromArgs 从 --mask 与位置参数构造配对。
func pairFromArgs(mask string, args []string) (xip.AddrMaskPair, error) {
	if len(args) != 1 {
		return xip.AddrMaskPair{}, &usageError{msg: "需要恰好一个地址参数"}
	}
	if mask == "" {
		return xip.AddrMaskPair{}, &usageError{msg: "需要 --mask 参数"}
	}
	addr, err := xip.ParseNamed("address", args[0])
	if err != nil {
		return xip.AddrMaskPair{}, err
	}
	m, err := xip.ParseNamed("netmask", mask)
	if err != nil {
		return xip.AddrMaskPair{}, err
	}
	return xip.AddrMaskPair{Addr: addr, Netmask: m}, nil
}
