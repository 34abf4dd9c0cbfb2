package domain

import "context"

// Relation 枚举所有双向引用的"拥有方"数组。
// 存储层没有外键，attach/detach 必须成对维护两端。
type Relation int

const (
	RelCompanyProjects Relation = iota
	RelCompanyOffers
	RelCompanyEngineers
	RelCompanyComments
	RelUserOffers
	RelUserLikes
)

// RelationStore 统一的 attach/detach 入口，所有引擎共用，
// 避免每条路由各写一套数组增删
type RelationStore interface {
	// Attach 幂等：childId 已存在则不重复追加
	Attach(ctx context.Context, rel Relation, ownerID, childID string) error
	Detach(ctx context.Context, rel Relation, ownerID, childID string) error
}
