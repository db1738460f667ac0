package block

var registry = make(map[BlockID]BlockBehavior)

// Register добавляет поведение блока в регистр
func Register(id BlockID, behavior BlockBehavior) {
	registry[id] = behavior
}

// Get возвращает поведение для указанного ID
func Get(id BlockID) (BlockBehavior, bool) {
	behavior, exists := registry[id]
	return behavior, exists
}

// IsValidBlockID проверяет, является ли ID допустимым идентификатором блока
func IsValidBlockID(id BlockID) bool {
	_, exists := registry[id]
	return exists
}

// BlockID представляет идентификатор типа блока
type BlockID uint8

// Константы ID блоков. Значения фиксированы: они же служат индексами
// в массивах блоков чанков.
const (
	Air   BlockID = iota // 0
	Stone                // 1
	Dirt                 // 2
	Grass                // 3
	Water                // 4
)

// IsTransparentToLight возвращает true, если свет проходит через блок.
// Прозрачны воздух и вода; отсутствующее в регистре поведение считается
// непрозрачным.
func IsTransparentToLight(id BlockID) bool {
	behavior, exists := registry[id]
	if !exists {
		return false
	}
	return behavior.Opacity() != Opaque
}

// IsSolid возвращает true, если блок участвует в коллизиях.
// Вода проходима, хоть и видима.
func IsSolid(id BlockID) bool {
	behavior, exists := registry[id]
	if !exists {
		return false
	}
	return behavior.Opacity() == Opaque
}
