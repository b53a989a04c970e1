package identifiers

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/jonboulle/clockwork"
)

// Observer recibe señales del allocator (métricas). Puede ser nil.
type Observer interface {
	PrefixCollision(candidate string)
	AnimalIDRetry(prefix string)
}

// LatestAnimalIDSource devuelve el animal_id más reciente con "<prefix>-".
// found=false si el prefix todavía no tiene animales.
type LatestAnimalIDSource interface {
	LatestAnimalID(ctx context.Context, prefix string) (id string, found bool, err error)
}

// HighestAnimalIDSource devuelve el animal_id con mayor sufijo numérico
// para "<prefix>-". Ids con sufijo no numérico no cuentan.
type HighestAnimalIDSource interface {
	HighestAnimalID(ctx context.Context, prefix string) (id string, found bool, err error)
}

type Allocator struct {
	clock    clockwork.Clock
	observer Observer

	mu    sync.Mutex
	locks map[string]*prefixLock
}

type prefixLock struct {
	mu   sync.Mutex
	refs int
}

func NewAllocator(clock clockwork.Clock, observer Observer) *Allocator {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Allocator{
		clock:    clock,
		observer: observer,
		locks:    make(map[string]*prefixLock),
	}
}

// FarmPrefix elige el primer candidato libre para fullName.
// Si base..base9 están tomados, prueba base[:2] + último dígito del unix time;
// si ese también existe devuelve ErrPrefixExhausted.
func (a *Allocator) FarmPrefix(ctx context.Context, fullName string, checker PrefixChecker) (string, error) {
	base := BasePrefix(fullName)

	for _, candidate := range Candidates(base) {
		taken, err := checker.FarmPrefixExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		a.collision(candidate)
	}

	fallback := fmt.Sprintf("%s%d", base[:2], a.clock.Now().Unix()%10)
	taken, err := checker.FarmPrefixExists(ctx, fallback)
	if err != nil {
		return "", err
	}
	if taken {
		a.collision(fallback)
		return "", fmt.Errorf("%w: %q", ErrPrefixExhausted, base)
	}
	return fallback, nil
}

// AllocateAnimalID calcula el siguiente id para prefix.
// El caller debe tener tomado LockPrefix(prefix) hasta terminar el insert.
func (a *Allocator) AllocateAnimalID(ctx context.Context, prefix string, src LatestAnimalIDSource) (string, error) {
	return allocate(ctx, prefix, src.LatestAnimalID)
}

// AllocateAfterConflict se usa cuando el insert chocó: el "latest" por
// created_at pudo quedar atrás (reloj que retrocede), así que se sigue desde
// el mayor sufijo existente.
func (a *Allocator) AllocateAfterConflict(ctx context.Context, prefix string, src HighestAnimalIDSource) (string, error) {
	return allocate(ctx, prefix, src.HighestAnimalID)
}

func allocate(ctx context.Context, prefix string, lookup func(context.Context, string) (string, bool, error)) (string, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return "", ErrEmptyPrefix
	}
	latest, found, err := lookup(ctx, prefix)
	if err != nil {
		return "", err
	}
	if !found {
		return FormatAnimalID(prefix, 1), nil
	}
	return NextAnimalID(prefix, latest), nil
}

// LockPrefix serializa la asignación de ids dentro de un mismo farm prefix.
func (a *Allocator) LockPrefix(prefix string) (unlock func()) {
	a.mu.Lock()
	l, ok := a.locks[prefix]
	if !ok {
		l = &prefixLock{}
		a.locks[prefix] = l
	}
	l.refs++
	a.mu.Unlock()

	l.mu.Lock()

	return func() {
		l.mu.Unlock()

		a.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(a.locks, prefix)
		}
		a.mu.Unlock()
	}
}

// RecordRetry avisa al observer que un insert chocó con un animal_id existente.
func (a *Allocator) RecordRetry(prefix string) {
	if a.observer != nil {
		a.observer.AnimalIDRetry(prefix)
	}
}

func (a *Allocator) collision(candidate string) {
	if a.observer != nil {
		a.observer.PrefixCollision(candidate)
	}
}

// FormatAnimalID arma "<prefix>-NNN" (mínimo 3 dígitos, sin tope).
func FormatAnimalID(prefix string, n int) string {
	return fmt.Sprintf("%s-%03d", prefix, n)
}

// NextAnimalID incrementa el sufijo numérico de latest.
// Sufijo no numérico => reinicia en 1.
func NextAnimalID(prefix, latest string) string {
	i := strings.LastIndex(latest, "-")
	if i < 0 || i == len(latest)-1 {
		return FormatAnimalID(prefix, 1)
	}
	n, err := strconv.Atoi(latest[i+1:])
	if err != nil || n < 0 {
		return FormatAnimalID(prefix, 1)
	}
	return FormatAnimalID(prefix, n+1)
}
