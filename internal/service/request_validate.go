package service

import (
	"strings"

	"github.com/wasel-delivery/internal/constants"
)

// SanitizeInput 递归清洗入参：字符串去首尾空白，容器逐项下钻，其余原样返回。
func SanitizeInput(value interface{}) interface{} {
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	case map[string]interface{}:
		cleaned := make(map[string]interface{}, len(v))
		for key, item := range v {
			cleaned[key] = SanitizeInput(item)
		}
		return cleaned
	case []interface{}:
		cleaned := make([]interface{}, len(v))
		for i, item := range v {
			cleaned[i] = SanitizeInput(item)
		}
		return cleaned
	default:
		return value
	}
}

// MissingFields 返回入参中缺失的必填字段
// 空字符串、空数组与显式 null 都视为缺失。
func MissingFields(payload map[string]interface{}, required []string) []string {
	missing := make([]string, 0)
	for _, field := range required {
		value, ok := payload[field]
		if !ok || value == nil {
			missing = append(missing, field)
			continue
		}
		switch v := value.(type) {
		case string:
			if v == "" {
				missing = append(missing, field)
			}
		case []interface{}:
			if len(v) == 0 {
				missing = append(missing, field)
			}
		}
	}
	return missing
}

// ValidDeliveryState 判断目标状态是否在允许集合内
func ValidDeliveryState(state string) bool {
	for _, s := range constants.ValidDeliveryStates {
		if s == state {
			return true
		}
	}
	return false
}
