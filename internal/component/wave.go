package component

// Wave: состояние текущей волны
type Wave struct {
	Number         int
	InProgress     bool
	EnemiesToSpawn int
	Spawned        int     // Сколько врагов уже выпущено в этой волне
	SpawnInterval  float64 // Интервал до следующего спавна, в секундах
	LastSpawn      float64 // GameTime последнего спавна
}
