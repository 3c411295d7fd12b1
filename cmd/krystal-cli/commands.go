package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/defitools/krystal-cloud-client/pkg/client"
	"github.com/defitools/krystal-cloud-client/pkg/models"
	"github.com/defitools/krystal-cloud-client/pkg/pagination"
	"github.com/defitools/krystal-cloud-client/pkg/query"
)

func newChainsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chains",
		Short: "List supported blockchain networks",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			chains, err := c.GetChains(cmd.Context())
			if err != nil {
				return err
			}
			if flagJSON {
				return printJSON(chains)
			}
			for _, chain := range chains {
				fmt.Printf("%6d  %s\n", chain.ID, chain.Name)
			}
			return nil
		},
	}
}

func newChainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chain <chain-id>",
		Short: "Show stats for one chain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			chainID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid chain id %q", args[0])
			}
			c, err := newClient()
			if err != nil {
				return err
			}
			stats, err := c.GetChainStats(cmd.Context(), chainID)
			if err != nil {
				return err
			}
			return printJSON(stats)
		},
	}
}

func newPoolsCmd() *cobra.Command {
	var (
		chainID        int
		limit          int
		offset         int
		protocol       string
		token          string
		factory        string
		sortBy         string
		minTVL         int64
		minVolume      int64
		withIncentives bool
		allPages       bool
	)

	cmd := &cobra.Command{
		Use:   "pools",
		Short: "Query liquidity pools",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}

			buildQuery := func(offset int) *query.PoolsQuery {
				q := query.NewPools().Limit(limit).Offset(offset)
				if chainID > 0 {
					q = q.ChainID(chainID)
				}
				if protocol != "" {
					q = q.Protocol(protocol)
				}
				if token != "" {
					q = q.Token(token)
				}
				if factory != "" {
					q = q.FactoryAddress(factory)
				}
				if minTVL > 0 {
					q = q.MinTVL(minTVL)
				}
				if minVolume > 0 {
					q = q.MinVolume24h(minVolume)
				}
				if withIncentives {
					q = q.WithIncentives(true)
				}
				if sort, ok := parsePoolSort(sortBy); ok {
					q = q.SortBy(sort)
				}
				return q
			}

			var pools []models.Pool
			if allPages {
				tracker := pagination.NewTracker(limit)
				for tracker.HasNext() {
					page, err := c.GetPools(cmd.Context(), buildQuery(int(tracker.NextOffset())))
					if err != nil {
						return err
					}
					pools = append(pools, page...)
					more := len(page) == limit
					tracker.Advance(&models.PaginatedResponse[models.Pool]{
						Data:    page,
						HasMore: &more,
					})
				}
			} else {
				pools, err = c.GetPools(cmd.Context(), buildQuery(offset))
				if err != nil {
					return err
				}
			}

			if flagJSON {
				return printJSON(pools)
			}
			for _, pool := range pools {
				apr, _ := pool.APR()
				fmt.Printf("%-46s  TVL $%.0f  24h vol $%.0f  APR %.2f%%  %s\n",
					pool.Address, pool.TVL, pool.Volume24h(), apr, pool.DisplayName())
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&chainID, "chain-id", "c", 0, "chain ID to filter by")
	cmd.Flags().IntVarP(&limit, "limit", "l", 10, "number of results per page")
	cmd.Flags().IntVar(&offset, "offset", 0, "pagination offset")
	cmd.Flags().StringVarP(&protocol, "protocol", "p", "", "protocol key to filter by")
	cmd.Flags().StringVarP(&token, "token", "t", "", "token address to filter by")
	cmd.Flags().StringVar(&factory, "factory", "", "factory address to filter by")
	cmd.Flags().StringVarP(&sortBy, "sort-by", "s", "", "sort order (apr, tvl, volume, fee)")
	cmd.Flags().Int64Var(&minTVL, "min-tvl", 0, "minimum TVL threshold in USD")
	cmd.Flags().Int64Var(&minVolume, "min-volume", 0, "minimum 24h volume threshold in USD")
	cmd.Flags().BoolVar(&withIncentives, "with-incentives", false, "pools with incentives only")
	cmd.Flags().BoolVar(&allPages, "all", false, "follow pagination until exhausted")

	return cmd
}

func parsePoolSort(s string) (models.PoolSort, bool) {
	switch s {
	case "apr":
		return models.SortByAPR, true
	case "tvl":
		return models.SortByTVL, true
	case "volume", "volume24h":
		return models.SortByVolume24h, true
	case "fee":
		return models.SortByFee, true
	default:
		return 0, false
	}
}

func newPoolCmd() *cobra.Command {
	var (
		factory        string
		withIncentives bool
	)

	cmd := &cobra.Command{
		Use:   "pool <chain-id> <pool-address>",
		Short: "Show one pool in detail",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			chainID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid chain id %q", args[0])
			}
			c, err := newClient()
			if err != nil {
				return err
			}
			pool, err := c.GetPoolDetail(cmd.Context(), chainID, args[1], client.PoolDetailOptions{
				FactoryAddress: factory,
				WithIncentives: withIncentives,
			})
			if err != nil {
				return err
			}
			return printJSON(pool)
		},
	}

	cmd.Flags().StringVar(&factory, "factory", "", "factory address")
	cmd.Flags().BoolVar(&withIncentives, "with-incentives", false, "include incentive details")

	return cmd
}

func newPositionsCmd() *cobra.Command {
	var (
		chainID   int
		status    string
		protocols []string
	)

	cmd := &cobra.Command{
		Use:   "positions <wallet>",
		Short: "List a wallet's liquidity positions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}

			q := query.NewPositions(args[0])
			if chainID > 0 {
				q = q.ChainID(chainID)
			}
			switch status {
			case "open":
				q = q.Status(models.StatusOpen)
			case "closed":
				q = q.Status(models.StatusClosed)
			}
			if len(protocols) > 0 {
				q = q.Protocols(protocols...)
			}

			positions, err := c.GetPositions(cmd.Context(), q)
			if err != nil {
				return err
			}
			if flagJSON {
				return printJSON(positions)
			}
			for _, pos := range positions {
				fmt.Printf("%-12s  %-10s  $%.2f\n", pos.ID, pos.Status, pos.TotalValue())
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&chainID, "chain-id", "c", 0, "chain ID to filter by")
	cmd.Flags().StringVarP(&status, "status", "s", "", "position status (open, closed)")
	cmd.Flags().StringSliceVarP(&protocols, "protocols", "p", nil, "protocol keys to filter by")

	return cmd
}

func newPositionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "position <chain-id> <position-id>",
		Short: "Show one position in detail",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			chainID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid chain id %q", args[0])
			}
			c, err := newClient()
			if err != nil {
				return err
			}
			position, err := c.GetPositionDetail(cmd.Context(), chainID, args[1])
			if err != nil {
				return err
			}
			return printJSON(position)
		},
	}
}

func newTransactionsCmd() *cobra.Command {
	var (
		limit  int
		offset int
		start  int64
		end    int64
	)

	cmd := &cobra.Command{
		Use:   "transactions <chain-id> <pool-address>",
		Short: "List a pool's recent transactions",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			chainID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid chain id %q", args[0])
			}
			c, err := newClient()
			if err != nil {
				return err
			}

			q := query.NewTransactions().Limit(limit)
			if offset > 0 {
				q = q.Offset(offset)
			}
			if start > 0 {
				q = q.StartTime(start)
			}
			if end > 0 {
				q = q.EndTime(end)
			}

			txs, err := c.GetPoolTransactions(cmd.Context(), chainID, args[1], "", q)
			if err != nil {
				return err
			}
			if flagJSON {
				return printJSON(txs)
			}
			for _, tx := range txs {
				fmt.Printf("%-66s  %-8s  %12.4f / %12.4f\n", tx.Hash, tx.Type, tx.Amount0, tx.Amount1)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 20, "number of results")
	cmd.Flags().IntVar(&offset, "offset", 0, "pagination offset")
	cmd.Flags().Int64Var(&start, "start", 0, "start Unix timestamp")
	cmd.Flags().Int64Var(&end, "end", 0, "end Unix timestamp")

	return cmd
}

func newProtocolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "protocols",
		Short: "List supported protocols",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			protocols, err := c.GetProtocols(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(protocols)
		},
	}
}
