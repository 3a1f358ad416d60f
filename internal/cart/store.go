package cart

import (
	"strings"
	"sync"
)

// カートの1明細。Nameは初回追加時の表記をそのまま保持する。
type LineItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int64   `json:"quantity"`
}

// Store はプロセス常駐のインメモリカート。
// 商品の同一性は正規化した名前（小文字化）で判定し、検索と削除で同じ規則を使う。
// 複数リクエストから共有されるのでmutexで直列化する。
type Store struct {
	mu    sync.Mutex
	items []LineItem
}

func NewStore() *Store {
	return &Store{items: []LineItem{}}
}

// NameKey は商品名の正規化キー。
func NameKey(name string) string {
	return strings.ToLower(name)
}

// Add は同一商品（正規化名が一致）があれば数量を加算し、無ければ末尾に追加する。
// 加算時は既存行の価格を維持する（新しいpriceは無視）。
func (s *Store) Add(name string, price float64, quantity int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.find(name); i >= 0 {
		s.items[i].Quantity += quantity
		return
	}

	s.items = append(s.items, LineItem{
		Name:     name,
		Price:    price,
		Quantity: quantity,
	})
}

// Items は明細のコピーを初回追加順で返す。
func (s *Store) Items() []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]LineItem, len(s.items))
	copy(out, s.items)
	return out
}

// Total は price×quantity の合計。空なら0。
func (s *Store) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, it := range s.items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

// Remove は正規化名が一致する明細を1行削除する。
// 見つからなければ何もせずfalseを返す（エラーにはしない）。
func (s *Store) Remove(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.find(name)
	if i < 0 {
		return false
	}

	s.items = append(s.items[:i], s.items[i+1:]...)
	return true
}

// Clear はカートを空にする。何度呼んでも良い。
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = []LineItem{}
}

// find は正規化名で最初に一致した添字を返す。呼び出し側がロックを持つこと。
func (s *Store) find(name string) int {
	key := NameKey(name)
	for i, it := range s.items {
		if NameKey(it.Name) == key {
			return i
		}
	}
	return -1
}
