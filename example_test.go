package partitioner_test

import (
	"fmt"

	partitioner "github.com/mreithub/go-index-partitioner"
)

func ExampleResolve() {
	var patterns, err = partitioner.Resolve("logs-*", partitioner.NewDate(2016, 10, 12), partitioner.NewDate(2018, 3, 20))
	if err != nil {
		panic(err)
	}
	fmt.Println(len(patterns))
	fmt.Println(patterns[:6])
	// Output:
	// 45
	// [logs-2016-10-12 logs-2016-10-13 logs-2016-10-14 logs-2016-10-15 logs-2016-10-16 logs-2016-10-17]
}

func ExamplePartitioner_Resolve() {
	var p = partitioner.MustNewPartitioner(
		partitioner.WithFrequency(partitioner.Month),
		partitioner.WithNowFunc(func() partitioner.Date { return partitioner.NewDate(2018, 7, 4) }),
	)

	var patterns, _ = p.Resolve("logs-*", partitioner.Date{}, partitioner.NewDate(2018, 4, 15))
	for _, pattern := range patterns {
		fmt.Println(pattern)
	}
	// Output:
	// -logs-2018-04
	// -logs-2018-05
	// -logs-2018-06
	// -logs-2018-07
	// logs-*
}
