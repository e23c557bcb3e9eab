// internal/shop/shop.go
package shop

import (
	"hex-defense/internal/config"
	"hex-defense/internal/utils"
)

// Shop держит витрину из config.ShopSlots предметов. Деньгами магазин не
// управляет: их списывает сессия.
type Shop struct {
	prng  *utils.PRNGService
	slots []Item
}

func NewShop(prng *utils.PRNGService) *Shop {
	s := &Shop{prng: prng, slots: make([]Item, config.ShopSlots)}
	s.Reroll()
	return s
}

// Items returns a copy of the current slots.
func (s *Shop) Items() []Item {
	return append([]Item(nil), s.slots...)
}

// Item returns the item in slot i.
func (s *Shop) Item(i int) (Item, bool) {
	if i < 0 || i >= len(s.slots) {
		return Item{}, false
	}
	return s.slots[i], true
}

// Reroll replaces every slot.
func (s *Shop) Reroll() {
	for i := range s.slots {
		s.slots[i] = GenerateItem(s.prng)
	}
}

// Take hands out slot i and restocks it.
func (s *Shop) Take(i int) (Item, bool) {
	item, ok := s.Item(i)
	if !ok {
		return Item{}, false
	}
	s.slots[i] = GenerateItem(s.prng)
	return item, true
}
