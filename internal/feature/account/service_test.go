package account_test

import (
	"testing"

	"jobdesk/internal/core/apperr"
	"jobdesk/internal/feature/account"
	"jobdesk/internal/testutil"
)

func newSvc() (*account.Service, *testutil.FakeUserRepo) {
	users := testutil.NewFakeUserRepo()
	return account.NewService(users), users
}

func valid() account.RegisterInput {
	return account.RegisterInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "s3cret",
		Role:      "seeker",
	}
}

func TestRegister_MissingFields(t *testing.T) {
	svc, users := newSvc()
	cases := []account.RegisterInput{
		{LastName: "L", Email: "a@b.c", Password: "x"},
		{FirstName: "A", Email: "a@b.c", Password: "x"},
		{FirstName: "A", LastName: "L", Password: "x"},
		{FirstName: "A", LastName: "L", Email: "a@b.c"},
	}
	for _, in := range cases {
		err := svc.Register(in)
		if !apperr.Is(err, apperr.KindValidation) {
			t.Errorf("Register(%+v) = %v, want validation error", in, err)
		}
	}
	if len(users.Users) != 0 {
		t.Errorf("no row should be inserted, got %d", len(users.Users))
	}
}

func TestRegister_RoleIsOptional(t *testing.T) {
	svc, _ := newSvc()
	in := valid()
	in.Role = ""
	if err := svc.Register(in); err != nil {
		t.Fatalf("Register without role: %v", err)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, users := newSvc()
	if err := svc.Register(valid()); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	err := svc.Register(valid())
	if !apperr.Is(err, apperr.KindConflict) {
		t.Fatalf("second Register = %v, want conflict", err)
	}
	// 顺序执行下该邮箱只应有一行
	if n := users.CountByEmail("ada@example.com"); n != 1 {
		t.Errorf("rows for email = %d, want 1", n)
	}
}

func TestRegister_DoesNotStorePlaintext(t *testing.T) {
	svc, users := newSvc()
	if err := svc.Register(valid()); err != nil {
		t.Fatal(err)
	}
	if users.Users[0].Password == "s3cret" {
		t.Error("password stored in plaintext")
	}
}

func TestLogin_MissingFields(t *testing.T) {
	svc, _ := newSvc()
	if _, err := svc.Login(account.LoginInput{Email: "a@b.c"}); !apperr.Is(err, apperr.KindValidation) {
		t.Errorf("missing password = %v, want validation", err)
	}
	if _, err := svc.Login(account.LoginInput{Password: "x"}); !apperr.Is(err, apperr.KindValidation) {
		t.Errorf("missing email = %v, want validation", err)
	}
}

// 统一错误：错口令和查无此人必须返回完全相同的消息
func TestLogin_UniformError(t *testing.T) {
	svc, _ := newSvc()
	if err := svc.Register(valid()); err != nil {
		t.Fatal(err)
	}

	_, errWrongPw := svc.Login(account.LoginInput{Email: "ada@example.com", Password: "wrong"})
	_, errNoUser := svc.Login(account.LoginInput{Email: "nobody@example.com", Password: "wrong"})

	if !apperr.Is(errWrongPw, apperr.KindAuth) || !apperr.Is(errNoUser, apperr.KindAuth) {
		t.Fatalf("want auth errors, got %v / %v", errWrongPw, errNoUser)
	}
	if errWrongPw.Error() != errNoUser.Error() {
		t.Errorf("messages differ: %q vs %q", errWrongPw.Error(), errNoUser.Error())
	}
}

func TestLogin_Success(t *testing.T) {
	svc, _ := newSvc()
	if err := svc.Register(valid()); err != nil {
		t.Fatal(err)
	}
	id, err := svc.Login(account.LoginInput{Email: "ada@example.com", Password: "s3cret"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if id.ID == 0 {
		t.Error("identity id not set")
	}
	// 名在前姓在后
	if id.Name != "Ada Lovelace" {
		t.Errorf("Name = %q, want %q", id.Name, "Ada Lovelace")
	}
	if id.Email != "ada@example.com" || id.Role != "seeker" {
		t.Errorf("identity = %+v", id)
	}
}
