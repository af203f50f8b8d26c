// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"

	"merge-defense/internal/defs"
)

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source),
	}
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Chance возвращает true с вероятностью p (p <= 0 — никогда, p >= 1 — всегда).
func (s *PRNGService) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return s.rng.Float64() < p
}

// ChooseWeighted выполняет взвешенный случайный выбор из таблицы выпадения.
// Он суммирует все веса, выбирает случайное число в этом диапазоне,
// а затем находит элемент, которому соответствует это число.
func (s *PRNGService) ChooseWeighted(entries []defs.LootEntry) string {
	if len(entries) == 0 {
		return ""
	}

	totalWeight := 0
	for _, entry := range entries {
		totalWeight += entry.Weight
	}

	if totalWeight <= 0 {
		return entries[0].ItemID
	}

	r := s.Intn(totalWeight)
	upto := 0
	for _, entry := range entries {
		if upto+entry.Weight > r {
			return entry.ItemID
		}
		upto += entry.Weight
	}

	return entries[len(entries)-1].ItemID
}

// ChooseClass выполняет взвешенный выбор класса врага.
func (s *PRNGService) ChooseClass(weights []defs.ClassWeight) defs.EnemyClass {
	if len(weights) == 0 {
		return defs.ClassBasic
	}

	totalWeight := 0
	for _, cw := range weights {
		totalWeight += cw.Weight
	}
	if totalWeight <= 0 {
		return weights[0].Class
	}

	r := s.Intn(totalWeight)
	upto := 0
	for _, cw := range weights {
		if upto+cw.Weight > r {
			return cw.Class
		}
		upto += cw.Weight
	}

	return weights[len(weights)-1].Class
}
