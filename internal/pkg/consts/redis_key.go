package consts

const (
	CompanyTrackedListKey = "company:tracked:list"
	CompanyDirtyKey       = "company:dirty"
)
