package pricing

import (
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/domain"
	"github.com/suraSGML/meskeremhotelproject-sub000/pkg/money"
)

// Операции над корзиной room service. Все функции чистые: входной слайс не изменяется.
// Количество не бывает отрицательным, строки с нулевым количеством удаляются.

// CartTotal сумма unitPrice x quantity по всем строкам
func CartTotal(lines []domain.CartLine) money.Money {
	var total money.Money
	for _, line := range lines {
		if line.Quantity <= 0 {
			continue
		}
		total = total.Add(line.Subtotal())
	}
	return total
}

// AddLine добавляет позицию; если позиция уже есть - увеличивает количество
func AddLine(lines []domain.CartLine, line domain.CartLine) []domain.CartLine {
	out := make([]domain.CartLine, 0, len(lines)+1)
	merged := false
	for _, l := range lines {
		if l.ItemID == line.ItemID {
			l.Quantity += line.Quantity
			l.UnitPrice = line.UnitPrice
			merged = true
		}
		out = append(out, l)
	}
	if !merged {
		out = append(out, line)
	}
	return compact(out)
}

// SetQuantity устанавливает количество позиции (отрицательное приводится к нулю)
func SetQuantity(lines []domain.CartLine, itemID string, quantity int) []domain.CartLine {
	if quantity < 0 {
		quantity = 0
	}
	out := make([]domain.CartLine, 0, len(lines))
	for _, l := range lines {
		if l.ItemID == itemID {
			l.Quantity = quantity
		}
		out = append(out, l)
	}
	return compact(out)
}

// RemoveLine удаляет позицию из корзины
func RemoveLine(lines []domain.CartLine, itemID string) []domain.CartLine {
	return SetQuantity(lines, itemID, 0)
}

// compact убирает строки с нулевым количеством
func compact(lines []domain.CartLine) []domain.CartLine {
	out := lines[:0]
	for _, l := range lines {
		if l.Quantity > 0 {
			out = append(out, l)
		}
	}
	return out
}
