package shop

import (
	"testing"

	"hex-defense/internal/config"
	"hex-defense/internal/utils"
	"hex-defense/pkg/hexmap"
)

func TestGenerateItemShapes(t *testing.T) {
	prng := utils.NewPRNGService(3)
	sizes := map[int]bool{}
	for i := 0; i < 500; i++ {
		item := GenerateItem(prng)
		n := len(item.Cells)
		if n < 1 || n > config.MaxItemCells {
			t.Fatalf("item with %d cells", n)
		}
		sizes[n] = true
		if item.Cost != config.ItemCostPerCell*n {
			t.Fatalf("cost %d for %d cells", item.Cost, n)
		}
		if item.Cells[0].Offset != (hexmap.Hex{}) {
			t.Fatal("first cell must sit on the centre")
		}
		seen := map[hexmap.Hex]bool{}
		for j, c := range item.Cells {
			if seen[c.Offset] {
				t.Fatalf("overlapping cells %v", item.Cells)
			}
			seen[c.Offset] = true
			if j > 0 && c.Offset.Distance(item.Cells[j-1].Offset) != 1 {
				t.Fatalf("cells are not a walk: %v", item.Cells)
			}
			if c.Type.Index() < 0 {
				t.Fatalf("unknown type %q", c.Type)
			}
		}
	}
	if len(sizes) != config.MaxItemCells {
		t.Fatalf("sizes seen: %v", sizes)
	}
}

func TestShopTakeRestocksSlot(t *testing.T) {
	s := NewShop(utils.NewPRNGService(11))
	if len(s.Items()) != config.ShopSlots {
		t.Fatalf("slots = %d", len(s.Items()))
	}
	before := s.Items()
	item, ok := s.Take(1)
	if !ok || len(item.Cells) != len(before[1].Cells) {
		t.Fatal("take returned the wrong item")
	}
	after := s.Items()
	if len(after[0].Cells) != len(before[0].Cells) || len(after[2].Cells) != len(before[2].Cells) {
		t.Fatal("untouched slots changed")
	}
	if _, ok := s.Take(config.ShopSlots); ok {
		t.Fatal("out of range slot accepted")
	}
	if _, ok := s.Item(-1); ok {
		t.Fatal("negative slot accepted")
	}
}

func TestShopIsReproducible(t *testing.T) {
	a := NewShop(utils.NewPRNGService(99))
	b := NewShop(utils.NewPRNGService(99))
	a.Reroll()
	b.Reroll()
	ia, ib := a.Items(), b.Items()
	for i := range ia {
		if len(ia[i].Cells) != len(ib[i].Cells) {
			t.Fatal("same seed produced different shops")
		}
		for j := range ia[i].Cells {
			if ia[i].Cells[j] != ib[i].Cells[j] {
				t.Fatal("same seed produced different shops")
			}
		}
	}
}
