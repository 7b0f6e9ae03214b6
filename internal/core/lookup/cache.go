// Package lookup は参照データ (部署・職位) の一回限りの読み込みを行います。
package lookup

import (
	"context"
	"strconv"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/ogurasousui/ems-console/internal/core/employee"
	"github.com/ogurasousui/ems-console/internal/core/view"
)

// Client は参照データエンドポイントへの窓口です。
type Client interface {
	Departments(ctx context.Context) ([]employee.Department, error)
	Positions(ctx context.Context) ([]employee.Position, error)
}

// Cache はアプリセッションにつき一度だけ読み込まれる参照データです。
// 再読み込みは行われず、結果はセッションの残りの間ずっと再利用されます。
type Cache struct {
	client Client
	log    *logrus.Entry

	mu          sync.RWMutex
	departments []employee.Department
	positions   []employee.Position
}

// NewCache は Cache を生成します。
func NewCache(client Client, log *logrus.Entry) *Cache {
	return &Cache{client: client, log: log}
}

// Refresh は部署と職位を並行して読み込みます。片方の失敗はそのリストを
// 空のままにするだけで、もう片方には影響しません。
func (c *Cache) Refresh(ctx context.Context) {
	var (
		wg          sync.WaitGroup
		departments []employee.Department
		positions   []employee.Position
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		result, err := c.client.Departments(ctx)
		if err != nil {
			c.log.WithError(err).Warn("failed to load departments")
			return
		}
		departments = result
	}()
	go func() {
		defer wg.Done()
		result, err := c.client.Positions(ctx)
		if err != nil {
			c.log.WithError(err).Warn("failed to load positions")
			return
		}
		positions = result
	}()
	wg.Wait()

	c.mu.Lock()
	c.departments = departments
	c.positions = positions
	c.mu.Unlock()
}

// DepartmentFilters は検索コントロール向けの射影です。値は部署名です。
func (c *Cache) DepartmentFilters() []view.Option {
	c.mu.RLock()
	defer c.mu.RUnlock()

	options := []view.Option{{Value: "", Label: "All Departments"}}
	for _, d := range c.departments {
		options = append(options, view.Option{Value: d.DepartmentName, Label: d.DepartmentName})
	}
	return options
}

// PositionFilters は検索コントロール向けの射影です。値は職位名です。
func (c *Cache) PositionFilters() []view.Option {
	c.mu.RLock()
	defer c.mu.RUnlock()

	options := []view.Option{{Value: "", Label: "All Positions"}}
	for _, p := range c.positions {
		options = append(options, view.Option{Value: p.Title, Label: p.Title})
	}
	return options
}

// DepartmentSelections は編集フォーム向けの射影です。値は部署 ID です。
func (c *Cache) DepartmentSelections() []view.Option {
	c.mu.RLock()
	defer c.mu.RUnlock()

	options := []view.Option{{Value: "", Label: "Select Department"}}
	for _, d := range c.departments {
		options = append(options, view.Option{Value: strconv.Itoa(d.DepartmentID), Label: d.DepartmentName})
	}
	return options
}

// PositionSelections は編集フォーム向けの射影です。値は職位 ID です。
func (c *Cache) PositionSelections() []view.Option {
	c.mu.RLock()
	defer c.mu.RUnlock()

	options := []view.Option{{Value: "", Label: "Select Position"}}
	for _, p := range c.positions {
		options = append(options, view.Option{Value: strconv.Itoa(p.PositionID), Label: p.Title})
	}
	return options
}
