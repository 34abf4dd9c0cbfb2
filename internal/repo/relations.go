package repo

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"go-gin-jobmarket/internal/domain"
)

type relTarget struct {
	table  string
	column string
}

var relTargets = map[domain.Relation]relTarget{
	domain.RelCompanyProjects:  {"companies", "projects"},
	domain.RelCompanyOffers:    {"companies", "offers"},
	domain.RelCompanyEngineers: {"companies", "engineers"},
	domain.RelCompanyComments:  {"companies", "comments"},
	domain.RelUserOffers:       {"users", "offers"},
	domain.RelUserLikes:        {"users", "likes"},
}

// Relations 是关系数组的统一读改写入口。
// 单行 SELECT ... FOR UPDATE + UPDATE，等价于文档库里的 $push/$pull；
// 跨行依旧没有原子性，调用方负责步骤顺序。
type Relations struct{ db *gorm.DB }

func NewRelations(db *gorm.DB) *Relations { return &Relations{db: db} }

func (r *Relations) Attach(ctx context.Context, rel domain.Relation, ownerID, childID string) error {
	return r.mutate(ctx, rel, ownerID, func(ids domain.IDList) domain.IDList {
		return ids.Add(childID)
	})
}

func (r *Relations) Detach(ctx context.Context, rel domain.Relation, ownerID, childID string) error {
	return r.mutate(ctx, rel, ownerID, func(ids domain.IDList) domain.IDList {
		return ids.Remove(childID)
	})
}

func (r *Relations) mutate(ctx context.Context, rel domain.Relation, ownerID string, fn func(domain.IDList) domain.IDList) error {
	t, ok := relTargets[rel]
	if !ok {
		return fmt.Errorf("relations: unknown relation %d", rel)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var lists []domain.IDList
		err := tx.Table(t.table).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", ownerID).
			Limit(1).
			Pluck(t.column, &lists).Error
		if err != nil {
			return err
		}
		if len(lists) == 0 {
			return domain.NotFound(t.table + " owner not found")
		}
		return tx.Table(t.table).Where("id = ?", ownerID).Update(t.column, fn(lists[0])).Error
	})
}
