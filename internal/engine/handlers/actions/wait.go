package actions

import (
	"github.com/daimeng/gloamwood/internal/engine/handlers"
)

func HandleWait(ctx handlers.Context) (handlers.Result, error) {
	if ctx.Game.Status().IsOver() || !ctx.World.HeroPlaced {
		return handlers.EmptyResult(), nil
	}
	ctx.Game.Wait()
	return handlers.Result{Changed: true}, nil
}
