package actions

import (
	"github.com/daimeng/gloamwood/internal/engine/handlers"
	"github.com/daimeng/gloamwood/pkg/api"
)

func HandleOpen(ctx handlers.Context, p api.PositionPayload) (handlers.Result, error) {
	w := ctx.World
	if !w.InBounds(p.X, p.Y) {
		return handlers.EmptyResult(), nil
	}

	heroBefore := w.HeroPos
	turnTaken := ctx.Game.OpenTile(p.X, p.Y) || w.HeroPos != heroBefore
	return handlers.Result{Changed: turnTaken}, nil
}
