package types

// BatchAssignRoleInput 批量分配角色参数
type BatchAssignRoleInput struct {
	RoleUrn string   `json:"roleUrn" validate:"required,urn"`
	Actors  []string `json:"actors" validate:"required,dive,required"`
}

type BatchAssignRoleRequest struct {
	Input BatchAssignRoleInput `json:"input"`
}

type ListRoleActorsRequest struct {
	RoleUrn  string `form:"roleUrn" validate:"required,urn"`
	Page     uint64 `form:"page,optional" default:"1" validate:"gte=1"`
	PageSize uint64 `form:"pageSize,optional" default:"10" validate:"gte=1,lte=200"`
}

type RoleActor struct {
	ActorUrn  string `json:"actorUrn"`
	ActorType string `json:"actorType"`
	CreatedBy string `json:"createdBy"`
	CreatedAt int64  `json:"createdAt"`
}

type ListRoleActorsResponse struct {
	Items []RoleActor `json:"items"`
	Total uint64      `json:"total"`
}

// GraphRequest 字段解析请求
type GraphRequest struct {
	Mutation  string         `json:"mutation"`
	Variables map[string]any `json:"variables,optional"`
}
