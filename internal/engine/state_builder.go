package engine

import (
	"github.com/daimeng/gloamwood/internal/domain"
	"github.com/daimeng/gloamwood/pkg/api"
	"github.com/daimeng/gloamwood/pkg/dungeon"
)

// BuildView создает неизменяемый "снимок" партии для рендера.
// Жильцы закрытых клеток в снимок не попадают.
func (g *GameEngine) BuildView() *api.WorldView {
	w := g.World

	view := &api.WorldView{
		SessionID: g.ID,
		Seed:      g.Seed,
		Turn:      g.Turn,
		Status:    g.status.String(),
		Grid:      api.GridMeta{Width: w.Width, Height: w.Height},
		Tiles:     make([]api.TileView, 0, w.Width*w.Height),
		EvilCount: w.EvilCount(),
	}

	// 1. Карта
	for y := 0; y < w.Height; y++ {
		for x := 0; x < w.Width; x++ {
			t := api.TileView{
				X: x, Y: y,
				Terrain:  w.Terrain[y][x].String(),
				IsOpen:   w.Open[y][x],
				Flag:     int(w.Flag[y][x]),
				Aura:     int(w.Aura[y][x]),
				ShowHint: w.ShowHint[y][x],
			}
			if id := w.EntityRef[y][x]; id != domain.NoneID && w.Open[y][x] {
				t.Entity = toEntityView(id, w.Entity(id))
			}
			view.Tiles = append(view.Tiles, t)
		}
	}

	// 2. Герой
	hero := w.Hero()
	view.Hero = api.HeroView{
		X:       w.HeroPos.X,
		Y:       w.HeroPos.Y,
		Placed:  w.HeroPlaced,
		HP:      hero.HP,
		MaxHP:   hero.MaxHP,
		Effects: effectNames(hero),
	}

	// 3. Остатки по породам
	for b, n := range w.Counts {
		if n == 0 {
			continue
		}
		tpl, _ := dungeon.Template(domain.Breed(b))
		view.Counts = append(view.Counts, api.BreedCount{
			Breed: domain.Breed(b).String(),
			Name:  tpl.Name,
			Glyph: string(tpl.Glyph),
			Level: tpl.Level,
			Count: n,
		})
	}

	// Копия логов
	view.Logs = make([]api.LogEntry, len(g.Logs))
	copy(view.Logs, g.Logs)

	return view
}

func toEntityView(id domain.EntityID, e *domain.Entity) *api.EntityView {
	v := &api.EntityView{
		ID:      id.String(),
		Breed:   e.Breed.String(),
		Name:    e.Name(),
		Level:   e.Level,
		HP:      e.HP,
		MaxHP:   e.MaxHP,
		Active:  e.Active,
		Effects: effectNames(e),
	}
	if tpl, ok := dungeon.Template(e.Breed); ok {
		v.Name = tpl.Name
		v.Glyph = string(tpl.Glyph)
	}
	return v
}

func effectNames(e *domain.Entity) []string {
	list := e.Effects.List()
	if len(list) == 0 {
		return nil
	}
	out := make([]string, len(list))
	for i, eff := range list {
		out[i] = eff.String()
	}
	return out
}
