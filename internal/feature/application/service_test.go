package application_test

import (
	"context"
	"strings"
	"testing"

	"jobdesk/internal/core/apperr"
	"jobdesk/internal/domain"
	"jobdesk/internal/feature/application"
	"jobdesk/internal/feature/attachment"
	"jobdesk/internal/testutil"
)

func newTracker() (*application.Service, *testutil.FakeApplicationRepo, *attachment.MemStore) {
	apps := testutil.NewFakeApplicationRepo(testutil.NewFakeUserRepo(), testutil.NewFakeJobRepo())
	blobs := attachment.NewMemStore()
	return application.NewService(apps, blobs), apps, blobs
}

func resume() *application.Upload {
	return &application.Upload{Name: "resume.pdf", Data: strings.NewReader("%PDF-1.4")}
}

func TestApply_NoFile(t *testing.T) {
	svc, apps, blobs := newTracker()
	err := svc.Apply(context.Background(), 1, 2, nil)
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("Apply without file = %v, want validation", err)
	}
	// 既不插行也不落盘
	if len(apps.Apps) != 0 {
		t.Errorf("application rows = %d, want 0", len(apps.Apps))
	}
	if blobs.Len() != 0 {
		t.Errorf("stored blobs = %d, want 0", blobs.Len())
	}
}

func TestApply_CreatesPendingRow(t *testing.T) {
	svc, apps, blobs := newTracker()
	if err := svc.Apply(context.Background(), 1, 2, resume()); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(apps.Apps) != 1 {
		t.Fatalf("rows = %d, want 1", len(apps.Apps))
	}
	a := apps.Apps[0]
	if a.Status != domain.StatusPending {
		t.Error("new application must start pending")
	}
	if a.JobID != 1 || a.UserID != 2 {
		t.Errorf("link = (%d,%d), want (1,2)", a.JobID, a.UserID)
	}
	if a.PostedDate.IsZero() {
		t.Error("postedDate must be server-assigned")
	}
	if a.FileID == "" || blobs.Len() != 1 {
		t.Errorf("attachment not recorded: fileId=%q blobs=%d", a.FileID, blobs.Len())
	}
	if !strings.HasSuffix(a.FileID, ".pdf") {
		t.Errorf("fileId %q should keep original extension", a.FileID)
	}
}

// 默认无去重：同一 (job, user) 重复投递产生多行
func TestApply_DuplicatesAllowedByDefault(t *testing.T) {
	svc, apps, _ := newTracker()
	ctx := context.Background()
	if err := svc.Apply(ctx, 1, 2, resume()); err != nil {
		t.Fatal(err)
	}
	if err := svc.Apply(ctx, 1, 2, resume()); err != nil {
		t.Fatalf("second Apply = %v, want success (duplicates permitted)", err)
	}
	if len(apps.Apps) != 2 {
		t.Errorf("rows = %d, want 2", len(apps.Apps))
	}
}

// hardening 打开后，重复投递以 409 暴露；附件已落盘不回删
func TestApply_HardeningUniqueIndex(t *testing.T) {
	svc, apps, blobs := newTracker()
	apps.Unique = true
	ctx := context.Background()
	if err := svc.Apply(ctx, 1, 2, resume()); err != nil {
		t.Fatal(err)
	}
	err := svc.Apply(ctx, 1, 2, resume())
	if !apperr.Is(err, apperr.KindConflict) {
		t.Fatalf("duplicate under hardening = %v, want conflict", err)
	}
	if len(apps.Apps) != 1 {
		t.Errorf("rows = %d, want 1", len(apps.Apps))
	}
	if blobs.Len() != 2 {
		t.Errorf("blobs = %d, want 2 (no compensating delete)", blobs.Len())
	}
}

func TestSetStatus_NotFound(t *testing.T) {
	svc, _, _ := newTracker()
	err := svc.SetStatus(9, 9, domain.StatusAccepted)
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("SetStatus on missing pair = %v, want not-found", err)
	}
}

func TestSetStatus_AcceptAndIdempotence(t *testing.T) {
	svc, apps, _ := newTracker()
	ctx := context.Background()
	if err := svc.Apply(ctx, 1, 2, resume()); err != nil {
		t.Fatal(err)
	}

	if err := svc.SetStatus(1, 2, domain.StatusAccepted); err != nil {
		t.Fatalf("SetStatus: %v", err)
	}
	if apps.Apps[0].Status != domain.StatusAccepted {
		t.Error("status not flipped to accepted")
	}

	// 重复置位：不报错，观测状态不变
	if err := svc.SetStatus(1, 2, domain.StatusAccepted); err != nil {
		t.Fatalf("second SetStatus = %v, want success", err)
	}
	if apps.Apps[0].Status != domain.StatusAccepted {
		t.Error("status changed on idempotent call")
	}

	// 置回 false 表示拒绝，与未审核不可区分（既有限制）
	if err := svc.SetStatus(1, 2, domain.StatusPending); err != nil {
		t.Fatalf("SetStatus(false) = %v", err)
	}
	if apps.Apps[0].Status != domain.StatusPending {
		t.Error("status not set back to false")
	}
}
