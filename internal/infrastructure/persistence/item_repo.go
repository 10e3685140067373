package persistence

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/samber/lo"

	"lootvalue/internal/domain"
	"lootvalue/internal/domain/entity"
	"lootvalue/pkg/errcodes"
)

const itemColumns = `
	i.id, i.template_id, i.parent_id, i.slot_kind, i.stack_count, i.durability,
	i.spawned_in_session, i.inoperable, i.location,
	t.name, t.width, t.height, t.weight, t.can_sell_on_market, t.vital`

// ItemRepository каталог предметов игрока.
type ItemRepository struct {
	db *sqlx.DB
}

func NewItemRepository(db *sqlx.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

// GetTree возвращает предмет со всеми установленными модулями и содержимым.
func (r *ItemRepository) GetTree(ctx context.Context, id string) (entity.Item, error) {
	query := `
		WITH RECURSIVE tree (id) AS (
			SELECT id FROM items WHERE id = ?
			UNION ALL
			SELECT c.id FROM items c JOIN tree ON c.parent_id = tree.id
		)
		SELECT ` + itemColumns + `
		FROM items i
		JOIN templates t ON t.id = i.template_id
		WHERE i.id IN (SELECT id FROM tree)
		ORDER BY i.id`

	var rows []itemSchema
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), id); err != nil {
		return entity.Item{}, domain.WrapError(err, errcodes.InternalServerError, "failed to get item tree")
	}

	root, ok := lo.Find(rows, func(row itemSchema) bool { return row.ID == id })
	if !ok {
		return entity.Item{}, domain.NewError(errcodes.ItemNotFound, errcodes.KindNotFound,
			fmt.Sprintf("item %s not found", id))
	}

	children := lo.GroupBy(rows, func(row itemSchema) string { return row.ParentID.String })

	return buildTree(root, children), nil
}

// ListContainer возвращает предметы, лежащие непосредственно в контейнере,
// каждый со своими модулями и содержимым.
func (r *ItemRepository) ListContainer(ctx context.Context, containerID string) ([]entity.Item, error) {
	query := `
		WITH RECURSIVE tree (id) AS (
			SELECT id FROM items WHERE parent_id = ? AND slot_kind = ?
			UNION ALL
			SELECT c.id FROM items c JOIN tree ON c.parent_id = tree.id
		)
		SELECT ` + itemColumns + `
		FROM items i
		JOIN templates t ON t.id = i.template_id
		WHERE i.id IN (SELECT id FROM tree)
		ORDER BY i.id`

	var rows []itemSchema
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), containerID, slotContent); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list container")
	}

	children := lo.GroupBy(rows, func(row itemSchema) string { return row.ParentID.String })

	roots := lo.Filter(children[containerID], func(row itemSchema, _ int) bool {
		return row.SlotKind == slotContent
	})

	return lo.Map(roots, func(row itemSchema, _ int) entity.Item {
		return buildTree(row, children)
	}), nil
}

func buildTree(node itemSchema, children map[string][]itemSchema) entity.Item {
	item := node.toDomain()

	for _, child := range children[node.ID] {
		sub := buildTree(child, children)
		item.Weight += sub.Weight

		switch child.SlotKind {
		case slotMod:
			item.Mods = append(item.Mods, sub)
		case slotContent:
			item.Contents = append(item.Contents, sub)
		}
	}

	item.Empty = len(item.Contents) == 0

	return item
}
