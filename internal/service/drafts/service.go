package drafts

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/suraSGML/meskeremhotelproject-sub000/internal/domain"
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/draft"
	catalogRepo "github.com/suraSGML/meskeremhotelproject-sub000/internal/infra/storage/catalog"
)

// Service собирает черновик бронирования из полей запроса и каталога.
// Цены всегда берутся из каталога, присланные клиентом суммы не используются.
type Service struct {
	catalogRepo CatalogRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса черновиков
func NewService(catalogRepo CatalogRepository, logger Logger) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// Build применяет поля формы к новому черновику и привязывает к нему каталог.
// Полноту черновика не проверяет: это делает Validate на шаге оплаты.
func (s *Service) Build(ctx context.Context, req *Request) (draft.Draft, error) {
	if !req.ResourceType.IsValid() {
		return draft.Draft{}, fmt.Errorf("%w: %s", domain.ErrUnknownResourceType, req.ResourceType)
	}

	d := draft.New(req.ResourceType, req.ResourceRef)

	// 1. Поля формы в стабильном порядке, чтобы ошибка была воспроизводимой
	fields := make([]domain.Field, 0, len(req.Fields))
	for field := range req.Fields {
		fields = append(fields, field)
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i] < fields[j] })

	for _, field := range fields {
		next, err := d.Update(field, req.Fields[field])
		if err != nil {
			s.logger.Warn("Build: %s field=%s: %v", req.ResourceType, field, err)
			return draft.Draft{}, err
		}
		d = next
	}

	// 2. Запись каталога по выбранному ресурсу
	if draft.NeedsCatalog(req.ResourceType) && d.ResourceRef != "" {
		entry, err := s.catalogRepo.GetEntry(ctx, req.ResourceType, d.ResourceRef)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrEntryNotFound) {
				s.logger.Warn("Build: %s ref=%s not found in catalog", req.ResourceType, d.ResourceRef)
				return draft.Draft{}, domain.NewFieldError(domain.FieldResourceRef, ErrCatalogEntryNotFound)
			}
			s.logger.Error("Build: failed to load %s ref=%s: %v", req.ResourceType, d.ResourceRef, err)
			return draft.Draft{}, fmt.Errorf("%w: Build - get entry: %v", ErrCatalog, err)
		}
		d = d.WithCatalog(entry)
	}

	// 3. Корзина room service с ценами из меню
	if len(req.Cart) > 0 {
		var err error
		d, err = s.fillCart(ctx, d, req.Cart)
		if err != nil {
			return draft.Draft{}, err
		}
	}

	return d, nil
}

func (s *Service) fillCart(ctx context.Context, d draft.Draft, cart []CartItem) (draft.Draft, error) {
	ids := make([]string, 0, len(cart))
	seen := make(map[string]struct{}, len(cart))
	for _, item := range cart {
		if _, ok := seen[item.ItemID]; ok {
			continue
		}
		seen[item.ItemID] = struct{}{}
		ids = append(ids, item.ItemID)
	}

	menu, err := s.catalogRepo.GetMenuItems(ctx, ids)
	if err != nil {
		s.logger.Error("Build: failed to load %d menu items: %v", len(ids), err)
		return d, fmt.Errorf("%w: Build - get menu items: %v", ErrCatalog, err)
	}

	for _, item := range cart {
		entry, ok := menu[item.ItemID]
		if !ok {
			s.logger.Warn("Build: menu item id=%s not found", item.ItemID)
			return d, domain.NewFieldError(domain.FieldCartLines, fmt.Errorf("%w: %s", ErrMenuItemNotFound, item.ItemID))
		}
		if !entry.Available {
			s.logger.Warn("Build: menu item id=%s is unavailable", item.ItemID)
			return d, domain.NewFieldError(domain.FieldCartLines, fmt.Errorf("%w: %s", ErrMenuItemUnavailable, entry.Name))
		}
		d = d.AddLine(domain.CartLine{
			ItemID:    entry.ID,
			Name:      entry.Name,
			UnitPrice: entry.UnitPrice,
			Quantity:  item.Quantity,
		})
	}

	return d, nil
}
