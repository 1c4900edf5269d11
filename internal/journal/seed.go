package journal

import (
	"math/rand/v2"
	"strings"
	"time"
)

// SeedStart is the first date the journal covers. Seeding fills every day
// from here through the requested end date.
var SeedStart = NewDate(2024, time.January, 1)

// journalFragments are the sentences placeholder journal text is drawn from.
var journalFragments = []string{
	"El cielo estaba cubierto de nubes suaves.",
	"Tomé una taza de café mirando por la ventana.",
	"Anoté las ideas que surgieron en la madrugada.",
	"Encontré un momento de calma en medio del ruido.",
	"La caminata corta me ayudó a aclarar la mente.",
	"Un nuevo proyecto comenzó a tomar forma hoy.",
	"Me acompañó la música mientras escribía.",
	"Decidí enfocarme en agradecer las pequeñas cosas.",
	"Guardé este pensamiento para revisarlo más tarde.",
	"Terminó el día con una sonrisa silenciosa.",
}

// poetryFragments are the verses placeholder poetry text is drawn from.
var poetryFragments = []string{
	"Brilla la tarde sobre el rincón del eco.",
	"La luna borda silencios de plata.",
	"Un río de suspiros cruza la memoria.",
	"Las palabras germinan bajo la lluvia lenta.",
	"En el pecho crece un jardín de luciérnagas.",
	"Danza el viento con las hojas dormidas.",
	"Se despierta el verso con aroma a madrugada.",
	"La sombra canta a la luz que no termina.",
	"Cada latido sostiene un puente de espuma.",
	"El poema sueña con voces de agua clara.",
}

// IntNFunc returns a random int in [0, n). Tests inject a deterministic one.
type IntNFunc func(n int) int

// Seeder generates placeholder entries for dates that have none yet.
type Seeder struct {
	intn IntNFunc
}

// NewSeeder creates a seeder. A nil intn uses the default random source.
func NewSeeder(intn IntNFunc) *Seeder {
	if intn == nil {
		intn = rand.IntN
	}
	return &Seeder{intn: intn}
}

// placeholderText builds 3 to 6 lines drawn from the pool. Repeats are
// allowed; the pool is small on purpose.
func (s *Seeder) placeholderText(pool []string) string {
	lines := 3 + s.intn(4)
	parts := make([]string, 0, lines)
	for i := 0; i < lines; i++ {
		parts = append(parts, pool[s.intn(len(pool))])
	}
	return strings.Join(parts, "\n")
}

// PlaceholderEntry returns a fresh entry with generated journal and poetry
// text and the given background color.
func (s *Seeder) PlaceholderEntry(color string) *Entry {
	entry := NewEntry(color)
	entry.Journal = s.placeholderText(journalFragments)
	entry.Poetry = s.placeholderText(poetryFragments)
	return entry
}

// Seed fills every date in [from, to] that has no entry with a placeholder.
// Existing entries are never touched. Returns the number of entries added.
func (s *Seeder) Seed(doc *Document, from, to Date, color string) int {
	added := 0
	for date := from; !date.After(to); date = date.Add(1) {
		if doc.Get(date) != nil {
			continue
		}
		doc.Put(date, s.PlaceholderEntry(color))
		added++
	}
	return added
}
