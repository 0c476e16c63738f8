package job_test

import (
	"testing"

	"jobdesk/internal/core/apperr"
	"jobdesk/internal/domain"
	"jobdesk/internal/feature/job"
	"jobdesk/internal/testutil"
)

func seed(t *testing.T, svc *job.Service, ins ...job.Input) {
	t.Helper()
	for _, in := range ins {
		if err := svc.Create(in); err != nil {
			t.Fatalf("Create(%+v): %v", in, err)
		}
	}
}

func TestListAll_EmptyCatalogIsNotFound(t *testing.T) {
	svc := job.NewService(testutil.NewFakeJobRepo())
	_, err := svc.ListAll()
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("ListAll on empty catalog = %v, want not-found", err)
	}
}

// 不对称契约：同样是空目录，Search 是 200 + 空数组，ListAll 是 404
func TestSearch_EmptyCatalogIsEmptyResult(t *testing.T) {
	svc := job.NewService(testutil.NewFakeJobRepo())
	got, err := svc.Search(domain.JobFilter{})
	if err != nil {
		t.Fatalf("Search on empty catalog: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("Search = %v, want non-nil empty slice", got)
	}
}

func TestSearch_TitleSubstring(t *testing.T) {
	svc := job.NewService(testutil.NewFakeJobRepo())
	seed(t, svc,
		job.Input{Title: "Software engineer", Location: "Lyon", Type: "full-time"},
		job.Input{Title: "Data engineer", Location: "Paris", Type: "contract"},
		job.Input{Title: "Product manager", Location: "Paris", Type: "full-time"},
	)

	got, err := svc.Search(domain.JobFilter{Title: "engineer"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("matched %d jobs, want 2: %+v", len(got), got)
	}
	for _, j := range got {
		if j.Title != "Software engineer" && j.Title != "Data engineer" {
			t.Errorf("unexpected match %q", j.Title)
		}
	}
}

func TestSearch_ConjunctionAndExactType(t *testing.T) {
	svc := job.NewService(testutil.NewFakeJobRepo())
	seed(t, svc,
		job.Input{Title: "Software engineer", Location: "Paris", Type: "full-time"},
		job.Input{Title: "Software engineer", Location: "Paris", Type: "full"},
		job.Input{Title: "Software engineer", Location: "Lyon", Type: "full-time"},
	)

	got, err := svc.Search(domain.JobFilter{Title: "engineer", Location: "Paris", Type: "full-time"})
	if err != nil {
		t.Fatal(err)
	}
	// type 是精确等值："full" 不能命中 "full-time" 的过滤
	if len(got) != 1 || got[0].Location != "Paris" || got[0].Type != "full-time" {
		t.Errorf("got %+v, want single Paris/full-time row", got)
	}
}

func TestSearch_NoFiltersReturnsEverything(t *testing.T) {
	svc := job.NewService(testutil.NewFakeJobRepo())
	seed(t, svc,
		job.Input{Title: "A"}, job.Input{Title: "B"}, job.Input{Title: "C"},
	)
	got, err := svc.Search(domain.JobFilter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Errorf("got %d jobs, want 3", len(got))
	}
}

func TestListForUser(t *testing.T) {
	repo := testutil.NewFakeJobRepo()
	svc := job.NewService(repo)
	seed(t, svc,
		job.Input{Title: "mine", UserID: 7},
		job.Input{Title: "theirs", UserID: 8},
	)

	if _, err := svc.ListForUser(""); !apperr.Is(err, apperr.KindValidation) {
		t.Errorf("missing userId = %v, want validation", err)
	}

	got, err := svc.ListForUser("7")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Title != "mine" {
		t.Errorf("got %+v, want only poster 7's job", got)
	}
}

func TestGet(t *testing.T) {
	svc := job.NewService(testutil.NewFakeJobRepo())
	seed(t, svc, job.Input{Title: "only"})

	j, err := svc.Get(1)
	if err != nil || j.Title != "only" {
		t.Fatalf("Get(1) = %+v, %v", j, err)
	}
	if _, err := svc.Get(99); !apperr.Is(err, apperr.KindNotFound) {
		t.Errorf("Get(99) = %v, want not-found", err)
	}
}

func TestUpdate_BlindOverwrite(t *testing.T) {
	repo := testutil.NewFakeJobRepo()
	svc := job.NewService(repo)
	seed(t, svc, job.Input{Title: "old", Company: "Acme", UserID: 3, MinSalary: 100})

	// 整条覆盖：未提供的字段写成零值而不是保留
	if err := svc.Update(1, job.Input{Title: "new"}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	j, _ := svc.Get(1)
	if j.Title != "new" || j.Company != "" || j.MinSalary != 0 {
		t.Errorf("overwrite incomplete: %+v", j)
	}
	if j.UserID != 3 {
		t.Errorf("poster must survive update, got %d", j.UserID)
	}

	// 不存在的 id：0 行命中仍然成功
	if err := svc.Update(42, job.Input{Title: "ghost"}); err != nil {
		t.Errorf("Update on missing id = %v, want success", err)
	}
}
