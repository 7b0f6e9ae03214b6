package view

import "sync"

// Alert は表示中のアラートの内容です。
type Alert struct {
	Message string
	Kind    AlertKind
	Visible bool
}

// MemorySurface は Surface のメモリー内実装です。端末アダプターの
// 状態保持の土台であり、コントローラーのテストでもそのまま使えます。
type MemorySurface struct {
	mu      sync.RWMutex
	values  map[string]string
	texts   map[string]string
	options map[string][]Option
	visible map[string]bool
	alerts  map[string]Alert
	tables  map[string]Table
	details map[string]Detail
}

// NewMemorySurface は MemorySurface を生成します。
func NewMemorySurface() *MemorySurface {
	return &MemorySurface{
		values:  make(map[string]string),
		texts:   make(map[string]string),
		options: make(map[string][]Option),
		visible: make(map[string]bool),
		alerts:  make(map[string]Alert),
		tables:  make(map[string]Table),
		details: make(map[string]Detail),
	}
}

// Value はフィールド値を返します。
func (m *MemorySurface) Value(field string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.values[field]
}

// SetValue はフィールド値を設定します。
func (m *MemorySurface) SetValue(field, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[field] = value
}

// SetText はテキスト領域を設定します。
func (m *MemorySurface) SetText(id, text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.texts[id] = text
}

// SetOptions は選択コントロールの項目を差し替えます。
func (m *MemorySurface) SetOptions(id string, options []Option) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.options[id] = options
}

// Show は領域を表示します。
func (m *MemorySurface) Show(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.visible[id] = true
}

// Hide は領域を隠します。
func (m *MemorySurface) Hide(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.visible[id] = false
}

// ShowAlert はアラートを表示します。
func (m *MemorySurface) ShowAlert(id, message string, kind AlertKind) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.alerts[id] = Alert{Message: message, Kind: kind, Visible: true}
}

// HideAlert はアラートを隠します。
func (m *MemorySurface) HideAlert(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a := m.alerts[id]
	a.Visible = false
	m.alerts[id] = a
}

// RenderTable は表を描画します。
func (m *MemorySurface) RenderTable(id string, table Table) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tables[id] = table
}

// RenderDetail は詳細を描画します。
func (m *MemorySurface) RenderDetail(id string, detail Detail) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.details[id] = detail
}

// Text はテキスト領域の内容を返します。
func (m *MemorySurface) Text(id string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.texts[id]
}

// Options は選択コントロールの項目を返します。
func (m *MemorySurface) Options(id string) []Option {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.options[id]
}

// Visible は領域が表示中かどうかを返します。
func (m *MemorySurface) Visible(id string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.visible[id]
}

// AlertState はアラートの現在の内容を返します。
func (m *MemorySurface) AlertState(id string) Alert {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.alerts[id]
}

// TableState は描画済みの表を返します。
func (m *MemorySurface) TableState(id string) (Table, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.tables[id]
	return t, ok
}

// DetailState は描画済みの詳細を返します。
func (m *MemorySurface) DetailState(id string) (Detail, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.details[id]
	return d, ok
}
