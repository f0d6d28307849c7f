package session

import (
	"fmt"

	"go.uber.org/zap"

	"dante/internal/domain"
)

// Participants lists everything reset by LogoutAll, in call order.
type Participants struct {
	Users      domain.UserStore
	Companies  domain.CompanyStore
	Clients    domain.LogoutParticipant
	Products   domain.LogoutParticipant
	Categories domain.LogoutParticipant
	Messages   domain.LogoutParticipant
	UserCache  domain.LogoutParticipant
	Tickets    domain.LogoutParticipant
	Session    domain.SessionStore
}

type participant struct {
	name string
	p    domain.LogoutParticipant
}

// Coordinator performs the logout fanout.
type Coordinator struct {
	order []participant
	log   *zap.Logger
}

// New builds a Coordinator. Nil participants are skipped.
func New(p Participants, log *zap.Logger) *Coordinator {
	if log == nil {
		log = zap.NewNop()
	}
	c := &Coordinator{log: log}
	c.add("user store", p.Users)
	c.add("company store", p.Companies)
	c.add("client cache", p.Clients)
	c.add("product cache", p.Products)
	c.add("category cache", p.Categories)
	c.add("message cache", p.Messages)
	c.add("user cache", p.UserCache)
	c.add("ticket cache", p.Tickets)
	c.add("session store", p.Session)
	return c
}

func (c *Coordinator) add(name string, p domain.LogoutParticipant) {
	if p == nil {
		return
	}
	c.order = append(c.order, participant{name: name, p: p})
}

// LogoutAll resets every participant. It always visits all of them.
func (c *Coordinator) LogoutAll() {
	for _, pt := range c.order {
		c.logout(pt)
	}
	c.log.Debug("logout fanout complete", zap.Int("participants", len(c.order)))
}

func (c *Coordinator) logout(pt participant) {
	defer func() {
		if r := recover(); r != nil {
			c.log.Error("logout participant panicked",
				zap.String("participant", pt.name),
				zap.String("panic", fmt.Sprint(r)),
			)
		}
	}()
	pt.p.Logout()
}

var _ domain.SessionCoordinator = (*Coordinator)(nil)
