// Package analyzer runs one follower analysis from start to finish.
//
// A run reads the following export, then every followers export, then the
// optional ignore list, compares the sets and writes the non-followers to the
// CSV report:
//
//	a, err := analyzer.New(cfg)
//	if err != nil {
//		return err
//	}
//	res, err := a.Run()
//	if err != nil {
//		return err
//	}
//	report.PrintSummary(os.Stdout, res, report.SummaryOptions{ShowList: true})
//
// Nothing is retained between runs. Only the CSV file persists.
package analyzer
