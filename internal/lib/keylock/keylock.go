// Package keylock реализует мьютексы по строковому ключу.
// Запись о ключе живёт, пока его кто-то держит или ждёт.
package keylock

import "sync"

type entry struct {
	mu   sync.Mutex
	refs int
}

// Locker раздаёт блокировки по ключам. Нулевое значение готово к работе.
type Locker struct {
	mu    sync.Mutex
	locks map[string]*entry
}

// New возвращает пустой Locker.
func New() *Locker {
	return &Locker{locks: make(map[string]*entry)}
}

// Lock блокирует key и возвращает функцию разблокировки.
func (l *Locker) Lock(key string) (unlock func()) {
	l.mu.Lock()
	if l.locks == nil {
		l.locks = make(map[string]*entry)
	}
	e, ok := l.locks[key]
	if !ok {
		e = &entry{}
		l.locks[key] = e
	}
	e.refs++
	l.mu.Unlock()

	e.mu.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			e.mu.Unlock()

			l.mu.Lock()
			e.refs--
			if e.refs == 0 {
				delete(l.locks, key)
			}
			l.mu.Unlock()
		})
	}
}

// Len возвращает количество ключей, которые сейчас удерживаются или ожидаются.
func (l *Locker) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
