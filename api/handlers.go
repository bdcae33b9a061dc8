package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/CosmWasm/tinyjson"
	"github.com/gin-gonic/gin"

	"okinoko_treasury/contract"
	"okinoko_treasury/contract/dao"
	"okinoko_treasury/sdk"
)

func callerOf(c *gin.Context) (sdk.Address, bool) {
	v := strings.TrimSpace(c.GetHeader(CallerHeader))
	if v == "" {
		badRequest(c, errMissingCaller)
		return "", false
	}
	return sdk.Address(v), true
}

func proposalID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("pid"), 10, 64)
	if err != nil {
		badRequest(c, err)
		return 0, false
	}
	return id, true
}

// render writes a tinyjson view.
func render(c *gin.Context, status int, v tinyjson.Marshaler) {
	b, err := tinyjson.Marshal(v)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(status, "application/json; charset=utf-8", b)
}

// read looks an org up under the lock for read only handlers.
func (s *Server) read(c *gin.Context, fn func(o *contract.Org)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, err := s.factory.Instance(sdk.Address(c.Param("id")))
	if err != nil {
		writeError(c, err)
		return
	}
	fn(o)
}

// reply writes body as tinyjson when it is a view, through gin otherwise.
func reply(c *gin.Context, status int, body any) {
	if v, ok := body.(tinyjson.Marshaler); ok {
		render(c, status, v)
		return
	}
	c.JSON(status, body)
}

// mutate runs fn for the caller against the org and saves the org within the same operation,
// so a failed save leaves the org as it was. The response fn produced is written last.
func (s *Server) mutate(c *gin.Context, fn func(o *contract.Org, who sdk.Address) (int, any, error)) {
	who, ok := callerOf(c)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	o, err := s.factory.Instance(sdk.Address(c.Param("id")))
	if err != nil {
		writeError(c, err)
		return
	}
	var (
		status int
		body   any
	)
	err = o.Commit(c.Request.Context(), s.state, func() error {
		var err error
		status, body, err = fn(o, who)
		return err
	})
	if err != nil {
		writeError(c, err)
		return
	}
	reply(c, status, body)
}

func (s *Server) listInstances(c *gin.Context) {
	s.mu.Lock()
	ids := s.factory.ListInstances()
	cur := s.factory.Currencies()
	s.mu.Unlock()

	list := dao.InstanceList{
		Instances:  make([]string, len(ids)),
		Currencies: make([]string, len(cur)),
	}
	for i, id := range ids {
		list.Instances[i] = id.String()
	}
	for i, a := range cur {
		list.Currencies[i] = a.String()
	}
	render(c, http.StatusOK, list)
}

func (s *Server) createInstance(c *gin.Context) {
	who, ok := callerOf(c)
	if !ok {
		return
	}
	var req createInstanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	args, err := req.args(who)
	if err != nil {
		badRequest(c, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	id, err := s.factory.CreateInstance(args)
	if err != nil {
		writeError(c, err)
		return
	}
	if s.state != nil {
		if err := s.saveInstance(c.Request.Context(), id); err != nil {
			s.factory.Forget(id)
			writeError(c, err)
			return
		}
	}
	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

func (s *Server) getInstance(c *gin.Context) {
	s.read(c, func(o *contract.Org) {
		render(c, http.StatusOK, o.View())
	})
}

func (s *Server) getBalance(c *gin.Context) {
	s.read(c, func(o *contract.Org) {
		holder := sdk.Address(c.Param("holder"))
		c.JSON(http.StatusOK, gin.H{
			"holder":  holder.String(),
			"balance": uint64(o.BalanceOf(holder)),
		})
	})
}

func (s *Server) purchase(c *gin.Context) {
	var req purchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	payment, err := sdk.ParseAmount(req.Payment, sdk.NativeDecimals)
	if err != nil {
		badRequest(c, err)
		return
	}
	s.mutate(c, func(o *contract.Org, who sdk.Address) (int, any, error) {
		units, err := o.Purchase(who, sdk.Amount(req.Units), payment)
		if err != nil {
			return 0, nil, err
		}
		return http.StatusOK, gin.H{"units": uint64(units), "balance": uint64(o.BalanceOf(who))}, nil
	})
}

func (s *Server) redeem(c *gin.Context) {
	var req redeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	s.mutate(c, func(o *contract.Org, who sdk.Address) (int, any, error) {
		payout, err := o.Redeem(who, sdk.Amount(req.Units))
		if err != nil {
			return 0, nil, err
		}
		return http.StatusOK, gin.H{"payout": sdk.FormatAmount(payout, sdk.NativeDecimals)}, nil
	})
}

func (s *Server) transfer(c *gin.Context) {
	var req transferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	s.mutate(c, func(o *contract.Org, who sdk.Address) (int, any, error) {
		if err := o.Transfer(who, sdk.Address(strings.TrimSpace(req.To)), sdk.Amount(req.Units)); err != nil {
			return 0, nil, err
		}
		return http.StatusOK, gin.H{"balance": uint64(o.BalanceOf(who))}, nil
	})
}

func (s *Server) deposit(c *gin.Context) {
	var req depositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	amount, err := sdk.ParseAmount(req.Amount, sdk.NativeDecimals)
	if err != nil {
		badRequest(c, err)
		return
	}
	s.mutate(c, func(o *contract.Org, who sdk.Address) (int, any, error) {
		if err := o.Deposit(who, amount); err != nil {
			return 0, nil, err
		}
		return http.StatusOK, gin.H{"vault": sdk.FormatAmount(o.VaultBalance(), sdk.NativeDecimals)}, nil
	})
}

func (s *Server) listProposals(c *gin.Context) {
	s.read(c, func(o *contract.Org) {
		render(c, http.StatusOK, dao.ProposalList{
			Org:       o.ID().String(),
			Store:     "governance",
			Proposals: o.ProposalViews(),
		})
	})
}

func (s *Server) getProposal(c *gin.Context) {
	id, ok := proposalID(c)
	if !ok {
		return
	}
	s.read(c, func(o *contract.Org) {
		v, err := o.ProposalView(id)
		if err != nil {
			writeError(c, err)
			return
		}
		render(c, http.StatusOK, v)
	})
}

func (s *Server) createProposal(c *gin.Context) {
	var req createProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	d, err := req.draft(sdk.Address(c.Param("id")))
	if err != nil {
		badRequest(c, err)
		return
	}
	s.mutate(c, func(o *contract.Org, who sdk.Address) (int, any, error) {
		id, err := o.CreateProposal(who, d.target, d.payload, d.value, req.Description)
		if err != nil {
			return 0, nil, err
		}
		return http.StatusCreated, gin.H{"id": id}, nil
	})
}

func (s *Server) signProposal(c *gin.Context) {
	id, ok := proposalID(c)
	if !ok {
		return
	}
	s.mutate(c, func(o *contract.Org, who sdk.Address) (int, any, error) {
		if err := o.Sign(who, id); err != nil {
			return 0, nil, err
		}
		v, _ := o.ProposalView(id)
		return http.StatusOK, v, nil
	})
}

func (s *Server) activateProposal(c *gin.Context) {
	id, ok := proposalID(c)
	if !ok {
		return
	}
	s.mutate(c, func(o *contract.Org, who sdk.Address) (int, any, error) {
		if err := o.Activate(who, id); err != nil {
			return 0, nil, err
		}
		v, _ := o.ProposalView(id)
		return http.StatusOK, v, nil
	})
}

func (s *Server) listWhitelistProposals(c *gin.Context) {
	s.read(c, func(o *contract.Org) {
		render(c, http.StatusOK, dao.ProposalList{
			Org:       o.ID().String(),
			Store:     "whitelist",
			Proposals: o.WhitelistProposalViews(),
		})
	})
}

func (s *Server) createWhitelistProposal(c *gin.Context) {
	var req whitelistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	s.mutate(c, func(o *contract.Org, who sdk.Address) (int, any, error) {
		id, err := o.CreateWhitelistProposal(who, sdk.Amount(req.Threshold), req.Description)
		if err != nil {
			return 0, nil, err
		}
		return http.StatusCreated, gin.H{"id": id}, nil
	})
}

func (s *Server) signWhitelistProposal(c *gin.Context) {
	id, ok := proposalID(c)
	if !ok {
		return
	}
	s.mutate(c, func(o *contract.Org, who sdk.Address) (int, any, error) {
		if err := o.SignWhitelist(who, id); err != nil {
			return 0, nil, err
		}
		return http.StatusOK, gin.H{"id": id, "signed": true}, nil
	})
}

func (s *Server) activateWhitelistProposal(c *gin.Context) {
	id, ok := proposalID(c)
	if !ok {
		return
	}
	s.mutate(c, func(o *contract.Org, who sdk.Address) (int, any, error) {
		if err := o.ActivateWhitelist(who, id); err != nil {
			return 0, nil, err
		}
		p, _ := o.WhitelistProposal(id)
		return http.StatusOK, gin.H{"id": id, "whitelisted": o.IsWhitelisted(p.Creator)}, nil
	})
}
