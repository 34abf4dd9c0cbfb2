package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// IDList 文档式关系数组：以 JSON 文本存储在所属行上，
// 替代外键连接表（存储层不保证引用完整性，由 service 层维护双向引用）
type IDList []string

func (l IDList) Has(id string) bool {
	for _, v := range l {
		if v == id {
			return true
		}
	}
	return false
}

// Add 幂等追加：已存在则原样返回
func (l IDList) Add(id string) IDList {
	if l.Has(id) {
		return l
	}
	return append(l, id)
}

func (l IDList) Remove(id string) IDList {
	out := l[:0]
	for _, v := range l {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

func (l IDList) Value() (driver.Value, error) {
	if l == nil {
		l = IDList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *IDList) Scan(v any) error {
	if v == nil {
		*l = IDList{}
		return nil
	}
	var b []byte
	switch s := v.(type) {
	case []byte:
		b = s
	case string:
		b = []byte(s)
	default:
		return fmt.Errorf("idlist: cannot scan %T", v)
	}
	if len(b) == 0 {
		*l = IDList{}
		return nil
	}
	return json.Unmarshal(b, l)
}
