package pb

// ---------------------------- 权限校验 ----------------------------

type CheckPrivilegeReq struct {
	ActorUrn  string `json:"actorUrn"`
	Privilege string `json:"privilege"`
}

type CheckPrivilegeResp struct {
	Allowed bool `json:"allowed"`
}

// ---------------------------- 角色 ----------------------------

type RoleExistsReq struct {
	RoleUrn string `json:"roleUrn"`
}

type RoleExistsResp struct {
	Exists bool `json:"exists"`
}

type AssignRoleToActorReq struct {
	ActorUrn string `json:"actorUrn"`
	RoleUrn  string `json:"roleUrn"`
}

type AssignRoleToActorResp struct {
	// Created 为 false 表示绑定关系已存在
	Created bool `json:"created"`
}

type ListRoleActorsReq struct {
	RoleUrn  string `json:"roleUrn"`
	Page     uint64 `json:"page"`
	PageSize uint64 `json:"pageSize"`
}

type RoleActor struct {
	ActorUrn  string `json:"actorUrn"`
	ActorType string `json:"actorType"`
	CreatedBy string `json:"createdBy"`
	CreatedAt int64  `json:"createdAt"`
}

type ListRoleActorsResp struct {
	Total uint64       `json:"total"`
	Items []*RoleActor `json:"items"`
}
