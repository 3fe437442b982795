package actions

import (
	"fmt"

	"github.com/daimeng/gloamwood/internal/engine/handlers"
	"github.com/daimeng/gloamwood/pkg/api"
)

func HandleChord(ctx handlers.Context, p api.PositionPayload) (handlers.Result, error) {
	opened := ctx.Game.ChordTile(p.X, p.Y)
	if opened == 0 {
		return handlers.EmptyResult(), nil
	}
	return handlers.Result{
		Msg:     fmt.Sprintf("Аккорд открывает клеток: %d.", opened),
		MsgType: "INFO",
		Changed: true,
	}, nil
}
