// Package plot renders 2-D clustering results as go-echarts scatter
// charts. One series per cluster plus a series for the centroids; output
// is a standalone HTML page.
package plot
