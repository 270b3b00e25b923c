package vars

// 分页上限
const MaxPageSize uint64 = 200

// 项目版本信息
const (
	ProjectName = "catalog-nova"
	ProjectVer  = "v0.1.0"
)
