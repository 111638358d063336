package kinds

import (
	"log/slog"
)

// slogKind wraps a TypeKind as a slog.LogValuer so kinds are only rendered
// when a record actually gets emitted.
func slogKind(k TypeKind) slog.LogValuer {
	return kindLogValuer{k}
}

type kindLogValuer struct{ TypeKind }

func (l kindLogValuer) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("str", l.TypeKind.String()),
		slog.Int("dims", Dimensions(l.TypeKind)),
		slog.Int("slots", Slots(l.TypeKind)),
	)
}
