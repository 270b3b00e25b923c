package urn

import (
	"errors"
	"fmt"
	"strings"
)

const (
	prefix = "urn:"
	// 平台命名空间，形如 urn:li:corpuser:alice
	platformNamespace = "li"
)

var ErrInvalidUrn = errors.New("invalid urn")

// Urn 平台实体唯一标识
// 支持 urn:<entityType>:<id> 与 urn:li:<entityType>:<id> 两种形式，id 中允许出现冒号
type Urn struct {
	raw        string
	namespace  string
	entityType string
	id         string
}

// Parse 解析 urn 字符串
func Parse(s string) (Urn, error) {
	s = strings.TrimSpace(s)
	if len(s) < len(prefix) || !strings.EqualFold(s[:len(prefix)], prefix) {
		return Urn{}, fmt.Errorf("%w: %q must start with %q", ErrInvalidUrn, s, prefix)
	}

	rest := s[len(prefix):]
	namespace := ""
	if strings.HasPrefix(rest, platformNamespace+":") {
		namespace = platformNamespace
		rest = rest[len(platformNamespace)+1:]
	}

	entityType, id, ok := strings.Cut(rest, ":")
	if !ok || entityType == "" || id == "" {
		return Urn{}, fmt.Errorf("%w: %q must contain an entity type and an id", ErrInvalidUrn, s)
	}

	return Urn{
		raw:        prefix + s[len(prefix):],
		namespace:  namespace,
		entityType: entityType,
		id:         id,
	}, nil
}

// MustParse 解析失败时 panic，仅用于常量与测试
func MustParse(s string) Urn {
	u, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return u
}

func (u Urn) String() string { return u.raw }

func (u Urn) Namespace() string { return u.namespace }

func (u Urn) EntityType() string { return u.entityType }

func (u Urn) Id() string { return u.id }

func (u Urn) IsZero() bool { return u.raw == "" }

// ActorType 按实体类型推断执行者类别
func (u Urn) ActorType() string {
	t := strings.ToLower(u.entityType)
	switch {
	case strings.Contains(t, "group"):
		return ActorTypeGroup
	case strings.Contains(t, "user"):
		return ActorTypeUser
	default:
		return ActorTypeUnknown
	}
}

const (
	ActorTypeUser    = "USER"
	ActorTypeGroup   = "GROUP"
	ActorTypeUnknown = "UNKNOWN"
)
