package repository

import "gorm.io/gorm"

// maxLogPageSize 单页日志条数上限，审计表只增不删，放开上限容易拖垮查询。
const maxLogPageSize = 500

// paginateLogs 把页码换算成 limit/offset；page_size 不合法时不分页（全量返回）。
func paginateLogs(query *gorm.DB, page, pageSize int) *gorm.DB {
	if query == nil || pageSize <= 0 {
		return query
	}
	if pageSize > maxLogPageSize {
		pageSize = maxLogPageSize
	}
	if page < 1 {
		page = 1
	}
	return query.Limit(pageSize).Offset((page - 1) * pageSize)
}
