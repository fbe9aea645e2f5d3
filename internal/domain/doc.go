// Package domain holds the computation behind the sea-level-rise dashboard.
//
// # Anomaly Grid
//
// The world map is a synthetic grid, not observed data. Latitudes are evenly
// spaced over [-60, 80] (polar caps are left out) and longitudes over
// [-180, 180]. Points are emitted longitude-major:
//
//	for each lon in lons:
//	    for each lat in lats:
//	        emit (lat, lon, anomaly)
//
// Each point gets one uniform draw in [-5, 5] °C from a generator seeded per
// call, so the same (latCount, lonCount, seed) always yields the same grid.
// The service default is 80 x 180 points with seed 42.
//
// # Color Scale
//
// Anomalies map onto a fixed three-stop gradient:
//
//	-5 °C  blue    #0000ff
//	 0 °C  orange  #ffa500
//	+5 °C  red     #ff0000
//
// Values outside the range are clamped to the nearest stop.
//
// # Region Cases
//
// Five countries carry a damage and a mitigation narrative: 대한민국, 투발루,
// 몰디브, 방글라데시, 네덜란드. The selector also offers "전 세계" (whole world),
// which has no case; [Lookup] reports it as absent and the page omits the panel.
//
// # Sea-Level Metric
//
// The selected-year figure is illustrative only. It is one uniform draw in
// [0, baseline] rounded to two decimals, compared against the 2025 baseline
// of 21.0 cm. The year labels the figure and does not feed the draw.
package domain
