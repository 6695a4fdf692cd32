package xip

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// MarshalText 实现 [encoding.TextMarshaler]。
// 输出规范文本形式。Unspec 变体输出空字节切片。
func (a Addr) MarshalText() ([]byte, error) {
	if a.ver == Unspec {
		return []byte{}, nil
	}
	s, err := a.Render()
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]。
// 支持 [Parse] 支持的格式。空输入或 "UNSPEC" 设置为零值（Unspec 变体）。
// 对 nil 接收者返回 [ErrNilReceiver]。
func (a *Addr) UnmarshalText(text []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	s := string(text)
	if s == "" || s == "UNSPEC" {
		*a = Addr{}
		return nil
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalJSON 实现 [json.Marshaler]。
// 输出带引号的规范文本形式字符串。Unspec 变体输出空字符串（""）。
//
// 规范地址文本仅包含 [0-9a-f.:%] 字符，zone ID 中的非常规字符
// 理论上需要转义，因此统一走 [json.Marshal] 而非手工拼接。
func (a Addr) MarshalJSON() ([]byte, error) {
	if a.ver == Unspec {
		return []byte(`""`), nil
	}
	s, err := a.Render()
	if err != nil {
		return nil, err
	}
	return json.Marshal(s)
}

// UnmarshalJSON 实现 [json.Unmarshaler]。
// 支持 [Parse] 支持的格式。空字符串、"UNSPEC" 或 null 设置为零值。
// 对 nil 接收者返回 [ErrNilReceiver]。
func (a *Addr) UnmarshalJSON(data []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	if string(data) == "null" {
		*a = Addr{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %w", ErrParse, err)
	}
	return a.UnmarshalText([]byte(s))
}

// Value 实现 [database/sql/driver.Valuer]。
// 输出规范文本形式字符串，Unspec 变体返回 nil（SQL NULL）。
func (a Addr) Value() (driver.Value, error) {
	if a.ver == Unspec {
		return nil, nil
	}
	return a.Render()
}

// Scan 实现 [database/sql.Scanner]。
// 支持 string、[]byte（字符串，或 4/16 字节二进制）、nil 输入。
// 对 nil 接收者返回 [ErrNilReceiver]。
func (a *Addr) Scan(src any) error {
	if a == nil {
		return ErrNilReceiver
	}
	switch v := src.(type) {
	case nil:
		*a = Addr{}
		return nil
	case string:
		return a.UnmarshalText([]byte(v))
	case []byte:
		// 4/16 字节视为二进制格式（BINARY(4)/BINARY(16) 列存储的原始地址字节），
		// 二进制解释优先。恰好 4/16 字符的地址文本（如 "1::1"）会被误判，
		// 文本列应以 string 类型传入，由驱动的列类型约定消除歧义。
		switch len(v) {
		case 4:
			var b [4]byte
			copy(b[:], v)
			*a = AddrFrom4(b)
			return nil
		case 16:
			var b [16]byte
			copy(b[:], v)
			*a = AddrFrom16(b)
			return nil
		default:
			return a.UnmarshalText(v)
		}
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrParse, src)
	}
}
