package hexmap

// Field — источник добавочного свечения (волны). Grid опрашивает его на каждом тике.
type Field interface {
	// ContributionAt возвращает добавку к целевой интенсивности ячейки.
	ContributionAt(h Hex) float64
	// Sources возвращает центры, вокруг которых поле может быть ненулевым.
	Sources() []Hex
	// Reach — радиус (в гексах) вокруг каждого источника.
	Reach() int
}

type noField struct{}

func (noField) ContributionAt(Hex) float64 { return 0 }
func (noField) Sources() []Hex             { return nil }
func (noField) Reach() int                 { return 0 }

// NoField — пустое поле без вклада.
var NoField Field = noField{}
