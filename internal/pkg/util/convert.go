package util

import "strconv"

// StrSliceToUInt64Slice 将字符串切片转换为 uint64 切片
func StrSliceToUInt64Slice(strs []string) ([]uint64, error) {
	ids := make([]uint64, 0, len(strs))
	for _, s := range strs {
		id, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// PtrString 用于将 string 转换为 *string，空串返回 nil
func PtrString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
