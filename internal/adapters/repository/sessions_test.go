package repository_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/okian/paddock/internal/adapters/repository"
	"github.com/okian/paddock/internal/domain/quiz"
	. "github.com/smartystreets/goconvey/convey"
)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("s%d", n)
	}
}

func TestSessionStore(t *testing.T) {
	ctx := context.Background()

	Convey("Given a store with default options", t, func() {
		s := repository.NewSessionStore()

		Convey("When a session is created", func() {
			id := s.Create(ctx, quiz.State{})

			Convey("Then it gets a uuid and can be read back", func() {
				So(id, ShouldHaveLength, 36)
				got, err := s.Get(ctx, id)
				So(err, ShouldBeNil)
				So(got, ShouldResemble, quiz.State{})
				So(s.Size(), ShouldEqual, 1)
			})
		})

		Convey("When an unknown id is read", func() {
			_, err := s.Get(ctx, "missing")
			So(errors.Is(err, repository.ErrSessionNotFound), ShouldBeTrue)
		})
	})

	Convey("Given a store with capacity 2", t, func() {
		s := repository.NewSessionStore(repository.WithCapacity(2), repository.WithIDGenerator(sequentialIDs()))
		a := s.Create(ctx, quiz.State{Score: 1})
		b := s.Create(ctx, quiz.State{Score: 2})

		Convey("When a third session is created", func() {
			c := s.Create(ctx, quiz.State{Score: 3})

			Convey("Then the oldest session is evicted", func() {
				So(s.Size(), ShouldEqual, 2)
				_, err := s.Get(ctx, a)
				So(err, ShouldEqual, repository.ErrSessionNotFound)
				got, err := s.Get(ctx, b)
				So(err, ShouldBeNil)
				So(got.Score, ShouldEqual, 2)
				got, err = s.Get(ctx, c)
				So(err, ShouldBeNil)
				So(got.Score, ShouldEqual, 3)
			})
		})

		Convey("When a session is deleted", func() {
			So(s.Delete(ctx, a), ShouldBeTrue)
			So(s.Delete(ctx, a), ShouldBeFalse)
			s.Create(ctx, quiz.State{})

			Convey("Then nothing else is evicted", func() {
				So(s.Size(), ShouldEqual, 2)
				_, err := s.Get(ctx, b)
				So(err, ShouldBeNil)
			})
		})
	})

	Convey("Given a colliding id generator", t, func() {
		ids := []string{"x", "x", "y"}
		i := 0
		s := repository.NewSessionStore(repository.WithIDGenerator(func() string {
			id := ids[i]
			i++
			return id
		}))

		Convey("Then fresh ids are drawn until one is free", func() {
			So(s.Create(ctx, quiz.State{}), ShouldEqual, "x")
			So(s.Create(ctx, quiz.State{}), ShouldEqual, "y")
		})
	})

	Convey("Given a stored session", t, func() {
		s := repository.NewSessionStore()
		id := s.Create(ctx, quiz.State{})

		Convey("When Update succeeds the new state is stored", func() {
			got, err := s.Update(ctx, id, func(st quiz.State) (quiz.State, error) {
				st.Selected = "Ferrari"
				return st, nil
			})
			So(err, ShouldBeNil)
			So(got.Selected, ShouldEqual, "Ferrari")
			stored, _ := s.Get(ctx, id)
			So(stored.Selected, ShouldEqual, "Ferrari")
		})

		Convey("When Update fails the state is kept", func() {
			_, err := s.Update(ctx, id, func(st quiz.State) (quiz.State, error) {
				st.Score = 99
				return st, quiz.ErrNotAnswered
			})
			So(err, ShouldEqual, quiz.ErrNotAnswered)
			stored, _ := s.Get(ctx, id)
			So(stored.Score, ShouldEqual, 0)
		})

		Convey("When Update targets an unknown id", func() {
			_, err := s.Update(ctx, "missing", func(st quiz.State) (quiz.State, error) { return st, nil })
			So(err, ShouldEqual, repository.ErrSessionNotFound)
		})
	})

	Convey("Given concurrent writers on a bounded store", t, func() {
		s := repository.NewSessionStore(repository.WithCapacity(50))
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					id := s.Create(ctx, quiz.State{})
					_, _ = s.Update(ctx, id, func(st quiz.State) (quiz.State, error) { return st, nil })
				}
			}()
		}
		wg.Wait()

		Convey("Then the store never exceeds its capacity", func() {
			So(s.Size(), ShouldEqual, 50)
		})
	})
}
