// Package archive は社員のアーカイブ (退職処理) の確認フローを管理します。
package archive

import (
	"context"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/ogurasousui/ems-console/internal/core/view"
)

// Client はアーカイブ要求の発行窓口です。
type Client interface {
	ArchiveEmployee(ctx context.Context, id int, reason string) (string, error)
}

// ListReloader はアーカイブ成功後の一覧再読み込みを担います。
type ListReloader interface {
	Load(ctx context.Context)
}

type pending struct {
	id          int
	displayName string
}

// Controller は確認モーダルと保留中のアーカイブ対象を管理します。
type Controller struct {
	client  Client
	list    ListReloader
	surface view.Surface
	log     *logrus.Entry

	mu      sync.Mutex
	pending *pending
}

// NewController は Controller を生成します。
func NewController(client Client, list ListReloader, surface view.Surface, log *logrus.Entry) *Controller {
	return &Controller{
		client:  client,
		list:    list,
		surface: surface,
		log:     log,
	}
}

// RequestArchive は対象を保留状態にして確認モーダルを開きます。
// すでに保留中の対象があれば新しい対象で上書きされます。
func (c *Controller) RequestArchive(id int, displayName string) {
	c.mu.Lock()
	c.pending = &pending{id: id, displayName: displayName}
	c.mu.Unlock()

	c.surface.SetText(view.TextArchiveName, displayName)
	c.surface.SetValue(view.FieldArchiveReason, "")
	c.surface.Show(view.ModalArchive)
}

// ConfirmArchive は保留中の対象にアーカイブ要求を発行します。
// 保留中の対象が無ければ何もしません。結果にかかわらず保留状態は
// 解除され、モーダルは閉じられます。
func (c *Controller) ConfirmArchive(ctx context.Context) {
	c.mu.Lock()
	target := c.pending
	c.pending = nil
	c.mu.Unlock()

	if target == nil {
		return
	}

	reason := strings.TrimSpace(c.surface.Value(view.FieldArchiveReason))

	c.surface.Hide(view.ModalArchive)

	if _, err := c.client.ArchiveEmployee(ctx, target.id, reason); err != nil {
		c.log.WithError(err).WithField("employee_id", target.id).Warn("failed to archive employee")
		c.surface.ShowAlert(view.AlertEmployees, view.ServerMessage(err, "Failed to archive employee."), view.AlertError)
		return
	}

	c.surface.ShowAlert(view.AlertEmployees, target.displayName+" has been archived to Past Employees.", view.AlertSuccess)
	c.list.Load(ctx)
}

// CancelArchive は保留状態を解除してモーダルを閉じます。ネットワークには
// 触れません。
func (c *Controller) CancelArchive() {
	c.mu.Lock()
	c.pending = nil
	c.mu.Unlock()

	c.surface.Hide(view.ModalArchive)
}
