package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/omeyang/ipkit/pkg/addr/xip"
)

// pairEntry 是配置文件中单个地址/掩码配对的形状。
type pairEntry struct {
	Addr    string `koanf:"addr"`
	Netmask string `koanf:"netmask"`
}

// checkConfig 是 check 命令的配置文件形状：
//
//	pairs:
//	  - addr: 192.168.1.10
//	    netmask: 255.255.255.0
type checkConfig struct {
	Pairs []pairEntry `koanf:"pairs"`
}

// loadPairs 从 YAML/JSON 配置文件加载地址/掩码配对列表。
// 格式根据文件扩展名检测（.yaml/.yml 或 .json）。
func loadPairs(path string) ([]xip.AddrMaskPair, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return parsePairs(data, filepath.Ext(path))
}

// parsePairs 解析配置字节并转换为配对列表。
func parsePairs(data []byte, ext string) ([]xip.AddrMaskPair, error) {
	var parser koanf.Parser
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, &usageError{msg: fmt.Sprintf("不支持的配置格式 %q（支持 .yaml/.yml/.json）", ext)}
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	var cfg checkConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	pairs := make([]xip.AddrMaskPair, 0, len(cfg.Pairs))
	for i, entry := range cfg.Pairs {
		p, err := xip.WirePair{Addr: entry.Addr, Netmask: entry.Netmask}.ToPair()
		if err != nil {
			return nil, fmt.Errorf("pair [%d]: %w", i, err)
		}
		pairs = append(pairs, p)
	}
	return pairs, nil
}
