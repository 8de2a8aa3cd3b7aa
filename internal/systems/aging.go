package systems

import (
	"github.com/expenses/snowy/internal/domain"
	"github.com/expenses/snowy/pkg/logger"
	"github.com/zyedidia/generic/mapset"
)

// StepEntities старит все динамические сущности на один ход.
// Сущности, чей счетчик дошел до нуля, удаляются сразу же, до возврата,
// поэтому следующий шаг хода их уже не увидит. Порядок оставшихся сохраняется.
// Возвращает укороченный слайс (тот же backing array) и число удаленных.
func StepEntities(entities []domain.DynamicEntity) ([]domain.DynamicEntity, int) {
	expired := mapset.New[domain.EntityID]()

	for i := range entities {
		if entities[i].Tick() {
			expired.Put(entities[i].ID)
		}
	}

	if expired.Size() == 0 {
		return entities, 0
	}

	kept := entities[:0]
	for _, e := range entities {
		if expired.Has(e.ID) {
			logger.Log.WithField("entity_id", e.ID).Debug("Entity expired")
			continue
		}
		kept = append(kept, e)
	}

	// Обнуляем хвост, чтобы не держать мусор в backing array
	tail := entities[len(kept):]
	for i := range tail {
		tail[i] = domain.DynamicEntity{}
	}

	return kept, expired.Size()
}
