package usecase_test

import (
	"context"

	"github.com/Asforaa/eBook-Store-API/internal/domain/entity"
	"github.com/Asforaa/eBook-Store-API/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los casos de uso (sin DB)
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users  map[int64]*entity.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*entity.User), nextID: 1}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	u.ID = r.nextID
	r.nextID++
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(id int64) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByUsernameWithPassword(username string) (*entity.User, error) {
	return r.GetByUsername(username)
}

func (r *fakeUserRepo) GetByUsernameOrEmail(username, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username || u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List() ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeUserRepo) UpdateRole(id int64, role string) error {
	if u, ok := r.users[id]; ok {
		u.Role = role
	}
	return nil
}

func (r *fakeUserRepo) Delete(id int64) (bool, error) {
	if _, ok := r.users[id]; !ok {
		return false, nil
	}
	delete(r.users, id)
	return true, nil
}

type fakeBookRepo struct {
	books  map[int64]*entity.Book
	nextID int64
}

func newFakeBookRepo() *fakeBookRepo {
	return &fakeBookRepo{books: make(map[int64]*entity.Book), nextID: 1}
}

func (r *fakeBookRepo) Create(b *entity.Book) error {
	b.ID = r.nextID
	r.nextID++
	r.books[b.ID] = b
	return nil
}

func (r *fakeBookRepo) GetByID(id int64) (*entity.Book, error) {
	b, ok := r.books[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBookRepo) ListByStatus(status string) ([]*entity.Book, error) {
	var out []*entity.Book
	for _, b := range r.books {
		if b.Status == status {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeBookRepo) Update(b *entity.Book) error {
	cp := *b
	r.books[b.ID] = &cp
	return nil
}

func (r *fakeBookRepo) UpdateStatus(id int64, status string, publishedBy int64) error {
	if b, ok := r.books[id]; ok {
		b.Status = status
		b.PublishedBy = &publishedBy
	}
	return nil
}

func (r *fakeBookRepo) Delete(id int64) (bool, error) {
	if _, ok := r.books[id]; !ok {
		return false, nil
	}
	delete(r.books, id)
	return true, nil
}

type fakeOrderRepo struct {
	orders map[string]*entity.Order
	sales  []*repository.SalesRow
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*entity.Order)}
}

func (r *fakeOrderRepo) Create(o *entity.Order) error {
	cp := *o
	r.orders[o.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) GetByID(id string) (*entity.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOrderRepo) ListByBuyer(buyerID int64) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.orders {
		if o.BuyerID == buyerID {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) AllSales() ([]*repository.SalesRow, error) {
	return r.sales, nil
}

func (r *fakeOrderRepo) AuthorSales(authorID int64) ([]*repository.SalesRow, error) {
	var out []*repository.SalesRow
	for _, row := range r.sales {
		if row.AuthorID == authorID {
			out = append(out, row)
		}
	}
	return out, nil
}

type fakeReviewRepo struct {
	reviews map[int64]*entity.Review
	nextID  int64
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[int64]*entity.Review), nextID: 1}
}

func (r *fakeReviewRepo) Create(rev *entity.Review) error {
	rev.ID = r.nextID
	r.nextID++
	cp := *rev
	r.reviews[rev.ID] = &cp
	return nil
}

func (r *fakeReviewRepo) GetByID(id int64) (*entity.Review, error) {
	rev, ok := r.reviews[id]
	if !ok {
		return nil, nil
	}
	cp := *rev
	return &cp, nil
}

func (r *fakeReviewRepo) ListByBook(bookID int64) ([]*entity.Review, error) {
	var out []*entity.Review
	for _, rev := range r.reviews {
		if rev.BookID == bookID {
			cp := *rev
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeReviewRepo) List() ([]*entity.Review, error) {
	var out []*entity.Review
	for _, rev := range r.reviews {
		cp := *rev
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeReviewRepo) Update(rev *entity.Review) error {
	cp := *rev
	r.reviews[rev.ID] = &cp
	return nil
}

func (r *fakeReviewRepo) Delete(id int64) (bool, error) {
	if _, ok := r.reviews[id]; !ok {
		return false, nil
	}
	delete(r.reviews, id)
	return true, nil
}

// fakeTxRunner pasa los repos directamente al callback; si fn falla, la orden
// no debe quedar persistida (el fake de orden solo escribe dentro de fn).
type fakeTxRunner struct {
	bookRepo  *fakeBookRepo
	orderRepo *fakeOrderRepo
}

func (r *fakeTxRunner) RunOrder(ctx context.Context, fn func(
	bookRepo repository.BookRepository,
	orderRepo repository.OrderRepository,
) error) error {
	return fn(r.bookRepo, r.orderRepo)
}
