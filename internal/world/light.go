package world

import (
	"github.com/annel0/voxel-engine/internal/vec"
	"github.com/annel0/voxel-engine/internal/world/block"
)

// MaxLightLevel — максимальный уровень света (небесный свет)
const MaxLightLevel = 15

// lightNode — узел очереди распространения: позиция и уровень света,
// с которым узел был поставлен в очередь
type lightNode struct {
	pos   vec.Vec3
	level uint8
}

// LightEngine распространяет свет заливкой (BFS) по шкале 0–15.
// Две явные FIFO-очереди: распространение и снятие. Все методы вызываются
// только с главной горутины; массовые операции обрабатываются порциями
// через ProcessBudget, синхронные правки сначала осушают очереди (Flush).
type LightEngine struct {
	world     *WorldManager
	propagate []lightNode // Очередь распространения
	remove    []lightNode // Очередь снятия света
}

// NewLightEngine создаёт движок освещения поверх менеджера мира
func NewLightEngine(wm *WorldManager) *LightEngine {
	return &LightEngine{world: wm}
}

// Pending возвращает суммарную длину очередей
func (le *LightEngine) Pending() int {
	return len(le.propagate) + len(le.remove)
}

// SeedSkyLight засеивает небесный свет по всем загруженным колоннам:
// сканирование каждого столбца (x, z) сверху вниз выставляет 15 до первого
// непрозрачного блока. Вторым проходом в очередь попадают только граничные
// небесные ячейки — те, у которых есть тёмный прозрачный сосед; внутренность
// равномерно освещённых областей распространять нечего.
func (le *LightEngine) SeedSkyLight() {
	height := le.world.cfg.Height

	le.world.ForEachChunk(func(chunk *Chunk) {
		for x := 0; x < ChunkSize; x++ {
			for z := 0; z < ChunkSize; z++ {
				for y := height - 1; y >= 0; y-- {
					local := vec.Vec3{X: x, Y: y, Z: z}
					if !block.IsTransparentToLight(chunk.GetBlock(local)) {
						break
					}
					chunk.SetLight(local, MaxLightLevel)
				}
			}
		}
	})

	le.world.ForEachChunk(func(chunk *Chunk) {
		origin := chunk.WorldOrigin()
		for x := 0; x < ChunkSize; x++ {
			for z := 0; z < ChunkSize; z++ {
				for y := height - 1; y >= 0; y-- {
					local := vec.Vec3{X: x, Y: y, Z: z}
					if !block.IsTransparentToLight(chunk.GetBlock(local)) {
						break
					}
					world := vec.Vec3{X: origin.X + x, Y: y, Z: origin.Z + z}
					if le.hasDarkTransparentNeighbor(world) {
						le.propagate = append(le.propagate, lightNode{pos: world, level: MaxLightLevel})
					}
				}
			}
		}
	})
}

// hasDarkTransparentNeighbor сообщает, есть ли у ячейки прозрачный сосед,
// способный принять свет от неё
func (le *LightEngine) hasDarkTransparentNeighbor(pos vec.Vec3) bool {
	for _, dir := range vec.Directions6 {
		nbr := pos.Add(dir)
		if !le.inWorld(nbr) {
			continue
		}
		if !block.IsTransparentToLight(le.world.BlockAt(nbr)) {
			continue
		}
		if le.world.LightAt(nbr)+1 < MaxLightLevel {
			return true
		}
	}
	return false
}

// inWorld проверяет, что ячейка лежит в границах высоты и в загруженной
// колонне. Заливка не ходит в незагруженные колонны: там негде хранить
// уровень, и BFS без отметки посещения разрастается за краем мира.
func (le *LightEngine) inWorld(pos vec.Vec3) bool {
	if pos.Y < 0 || pos.Y >= le.world.cfg.Height {
		return false
	}
	return le.world.GetChunk(pos.ToColumnCoords()) != nil
}

// ProcessBudget обрабатывает не более budget узлов из очередей и возвращает
// фактическое число обработанных. Снятие света идёт перед распространением:
// повторное заполнение не должно опираться на ещё не снятые уровни.
func (le *LightEngine) ProcessBudget(budget int) int {
	processed := 0
	for processed < budget && len(le.remove) > 0 {
		node := le.remove[0]
		le.remove = le.remove[1:]
		le.stepRemove(node)
		processed++
	}
	for processed < budget && len(le.propagate) > 0 {
		node := le.propagate[0]
		le.propagate = le.propagate[1:]
		le.stepPropagate(node)
		processed++
	}
	return processed
}

// Flush осушает очереди до конца. Вызывается перед синхронной правкой
// блока, чтобы отложенные узлы не перезаписали её результат.
func (le *LightEngine) Flush() {
	for le.Pending() > 0 {
		le.ProcessBudget(le.Pending())
	}
}

// stepPropagate раздаёт свет level-1 прозрачным соседям с меньшим уровнем
func (le *LightEngine) stepPropagate(node lightNode) {
	if node.level <= 1 {
		return
	}
	next := node.level - 1
	for _, dir := range vec.Directions6 {
		nbr := node.pos.Add(dir)
		if !le.inWorld(nbr) {
			continue
		}
		if !block.IsTransparentToLight(le.world.BlockAt(nbr)) {
			continue
		}
		if le.world.LightAt(nbr) >= next {
			continue
		}
		le.world.setLightAt(nbr, next)
		le.propagate = append(le.propagate, lightNode{pos: nbr, level: next})
	}
}

// stepRemove гасит соседей, освещённых слабее снятого уровня; сосед с
// уровнем не ниже снятого — независимый источник, он ставится в очередь
// распространения и заново заполняет потемневшую область.
func (le *LightEngine) stepRemove(node lightNode) {
	for _, dir := range vec.Directions6 {
		nbr := node.pos.Add(dir)
		if !le.inWorld(nbr) {
			continue
		}
		nbrLevel := le.world.LightAt(nbr)
		if nbrLevel == 0 {
			continue
		}
		if nbrLevel < node.level {
			le.world.setLightAt(nbr, 0)
			le.remove = append(le.remove, lightNode{pos: nbr, level: nbrLevel})
		} else {
			le.propagate = append(le.propagate, lightNode{pos: nbr, level: nbrLevel})
		}
	}
}

// onBlockPlaced пересчитывает свет после установки непрозрачного блока:
// ячейка гаснет, её прежний уровень снимается заливкой, а небесный столб
// под ней теряет прямой свет (боковые источники вернут его через BFS).
func (le *LightEngine) onBlockPlaced(pos vec.Vec3) {
	oldLevel := le.world.LightAt(pos)
	le.world.setLightAt(pos, 0)
	if oldLevel > 0 {
		le.remove = append(le.remove, lightNode{pos: pos, level: oldLevel})
	}

	// Столб под блоком: ячейки с прямым небесным светом перестают его получать
	for y := pos.Y - 1; y >= 0; y-- {
		below := vec.Vec3{X: pos.X, Y: y, Z: pos.Z}
		if !block.IsTransparentToLight(le.world.BlockAt(below)) {
			break
		}
		if le.world.LightAt(below) != MaxLightLevel {
			break
		}
		le.world.setLightAt(below, 0)
		le.remove = append(le.remove, lightNode{pos: below, level: MaxLightLevel})
	}
}

// onBlockRemoved пересчитывает свет после удаления непрозрачного блока:
// открытая небу ячейка получает 15 и продолжает небесный столб вниз,
// иначе берёт максимум соседей минус единица.
func (le *LightEngine) onBlockRemoved(pos vec.Vec3) {
	if le.isSkyExposed(pos) {
		for y := pos.Y; y >= 0; y-- {
			cell := vec.Vec3{X: pos.X, Y: y, Z: pos.Z}
			if !block.IsTransparentToLight(le.world.BlockAt(cell)) {
				break
			}
			le.world.setLightAt(cell, MaxLightLevel)
			le.propagate = append(le.propagate, lightNode{pos: cell, level: MaxLightLevel})
		}
		return
	}

	var best uint8
	for _, dir := range vec.Directions6 {
		nbr := pos.Add(dir)
		if nbr.Y < 0 || nbr.Y >= le.world.cfg.Height {
			continue
		}
		if level := le.world.LightAt(nbr); level > best {
			best = level
		}
	}
	if best > 1 {
		le.world.setLightAt(pos, best-1)
		le.propagate = append(le.propagate, lightNode{pos: pos, level: best - 1})
	}
}

// isSkyExposed проверяет, свободен ли столб над ячейкой до верха мира
func (le *LightEngine) isSkyExposed(pos vec.Vec3) bool {
	for y := pos.Y + 1; y < le.world.cfg.Height; y++ {
		if !block.IsTransparentToLight(le.world.BlockAt(vec.Vec3{X: pos.X, Y: y, Z: pos.Z})) {
			return false
		}
	}
	return true
}
