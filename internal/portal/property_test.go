package portal

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temitayo1239/student-information-portal-main/internal/fixture"
)

// TestRandomOperationSequences drives the state with random operations and
// checks the workflow invariants after every step.
func TestRandomOperationSequences(t *testing.T) {
	catalog := fixture.Courses()
	rng := rand.New(rand.NewPCG(7, 11))

	for run := 0; run < 200; run++ {
		s := NewState(fixtureSource{})
		wasRead := map[int]bool{}

		for step := 0; step < 60; step++ {
			code := catalog[rng.IntN(len(catalog))].Code
			id := rng.IntN(9)

			switch rng.IntN(10) {
			case 0:
				s.Session().Login("2023/12914", "pw")
			case 1:
				if rng.IntN(4) == 0 {
					s.Logout()
					wasRead = map[int]bool{}
				}
			case 2, 3:
				if reg, err := s.Registration(); err == nil {
					before := reg.Summary()
					if err := reg.AddToCart(code); err != nil {
						require.Equal(t, before, reg.Summary(), "rejected add must not mutate")
					}
				}
			case 4:
				if reg, err := s.Registration(); err == nil {
					reg.RemoveFromCart(code)
				}
			case 5:
				if reg, err := s.Registration(); err == nil {
					reg.DropCourse(code)
				}
			case 6:
				if reg, err := s.Registration(); err == nil {
					union := append(codes(reg.Registered()), codes(reg.Cart())...)
					reg.CommitRegistration()
					require.Empty(t, reg.Cart())
					require.ElementsMatch(t, union, codes(reg.Registered()))
				}
			case 7:
				if in, err := s.Inbox(); err == nil {
					_, _ = in.MarkRead(id)
				}
			case 8:
				if in, err := s.Inbox(); err == nil {
					in.MarkAllRead()
					require.Empty(t, in.Collect(FilterUnread))
				}
			case 9:
				snap := s.Snapshot()
				restored, err := RestoreState(fixtureSource{}, snap)
				require.NoError(t, err)
				s = restored
			}

			checkInvariants(t, s, wasRead)
		}
	}
}

func checkInvariants(t *testing.T, s *State, wasRead map[int]bool) {
	t.Helper()

	require.Equal(t, s.Session().IsAuthenticated(), s.Session().CurrentProfile().IsSome())

	reg := s.registration
	require.LessOrEqual(t, reg.TotalCredits(), MaxCredits)
	for _, c := range reg.Cart() {
		require.False(t, reg.IsRegistered(c.Code), "cart and registered overlap on %s", c.Code)
	}

	for n := range s.inbox.FilterBy(FilterAll) {
		if wasRead[n.ID] {
			require.True(t, n.IsRead, "notification %d went back to unread", n.ID)
		}
		if n.IsRead {
			wasRead[n.ID] = true
		}
	}
}
