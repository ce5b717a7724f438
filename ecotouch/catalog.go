package ecotouch

// Tags is the registry of all known properties, keyed by stable identifiers.
// It is populated at build time and optionally extended once at startup via
// LoadOverlay; it must not be mutated afterwards.
//
// Register numbers follow the EasyCon web GUI dictionary. An entry without an
// explicit Codec uses the default for its first register's kind.
var Tags = map[string]*TagData{
	// Outside, source and circuit temperatures
	"TEMPERATURE_OUTSIDE":         {Tags: []string{"A1"}, Unit: "°C"},
	"TEMPERATURE_OUTSIDE_1H":      {Tags: []string{"A2"}, Unit: "°C"},
	"TEMPERATURE_OUTSIDE_24H":     {Tags: []string{"A3"}, Unit: "°C"},
	"TEMPERATURE_SOURCE_ENTRY":    {Tags: []string{"A4"}, Unit: "°C"},
	"TEMPERATURE_SOURCE_EXIT":     {Tags: []string{"A5"}, Unit: "°C"},
	"TEMPERATURE_EVAPORATION":     {Tags: []string{"A6"}, Unit: "°C"},
	"TEMPERATURE_SUCTION_LINE":    {Tags: []string{"A7"}, Unit: "°C"},
	"PRESSURE_EVAPORATION":        {Tags: []string{"A8"}, Unit: "bar"},
	"TEMPERATURE_RETURN_SETPOINT": {Tags: []string{"A10"}, Unit: "°C"},
	"TEMPERATURE_RETURN":          {Tags: []string{"A11"}, Unit: "°C"},
	"TEMPERATURE_FLOW":            {Tags: []string{"A12"}, Unit: "°C"},
	"TEMPERATURE_CONDENSATION":    {Tags: []string{"A13"}, Unit: "°C"},
	"TEMPERATURE_BUBBLEPOINT":     {Tags: []string{"A14"}, Unit: "°C"},
	"PRESSURE_CONDENSATION":       {Tags: []string{"A15"}, Unit: "bar"},
	"TEMPERATURE_BUFFERTANK":      {Tags: []string{"A16"}, Unit: "°C"},
	"TEMPERATURE_ROOM":            {Tags: []string{"A17"}, Unit: "°C"},
	"TEMPERATURE_ROOM_1H":         {Tags: []string{"A18"}, Unit: "°C"},
	"TEMPERATURE_ROOM_TARGET":     {Tags: []string{"A100"}, Unit: "°C", Writeable: true},
	"ROOM_INFLUENCE":              {Tags: []string{"A101"}, Unit: "%", Writeable: true},
	"TEMPERATURE_SOLAR":           {Tags: []string{"A21"}, Unit: "°C"},
	"TEMPERATURE_SOLAR_EXIT":      {Tags: []string{"A22"}, Unit: "°C"},
	"POSITION_EXPANSION_VALVE":    {Tags: []string{"A23"}},
	"SUCTION_GAS_OVERHEATING":     {Tags: []string{"A24"}},
	"TEMPERATURE_DISCHARGE":       {Tags: []string{"A1462"}, Unit: "°C"},
	"PRESSURE_WATER":              {Tags: []string{"A1669"}, Unit: "bar"},
	"TEMPERATURE_COLLECTOR":       {Tags: []string{"A42"}, Unit: "°C"},
	"TEMPERATURE_FLOW2":           {Tags: []string{"A43"}, Unit: "°C"},

	// Power and coefficient of performance
	"POWER_ELECTRIC": {Tags: []string{"A25"}, Unit: "kW"},
	"POWER_HEATING":  {Tags: []string{"A26"}, Unit: "kW"},
	"POWER_COOLING":  {Tags: []string{"A27"}, Unit: "kW"},
	"COP_HEATING":    {Tags: []string{"A28"}},
	"COP_COOLING":    {Tags: []string{"A29"}},

	// Energy year balance
	"COP_HEATPUMP_YEAR":                    {Tags: []string{"A460"}},
	"COP_HEATPUMP_ACTUAL_YEAR_INFO":        {Tags: []string{"I1261"}, Codec: yearCodec{}},
	"COP_TOTAL_SYSTEM_YEAR":                {Tags: []string{"A461"}},
	"COP_HEATING_YEAR":                     {Tags: []string{"A695"}},
	"COP_HOT_WATER_YEAR":                   {Tags: []string{"A697"}},
	"ENERGY_CONSUMPTION_TOTAL_YEAR":        {Tags: []string{"A450", "A451"}, Unit: "kWh"},
	"COMPRESSOR_ELECTRIC_CONSUMPTION_YEAR": {Tags: []string{"A444", "A445"}, Unit: "kWh"},
	"SOURCEPUMP_ELECTRIC_CONSUMPTION_YEAR": {Tags: []string{"A446", "A447"}, Unit: "kWh"},
	"EXTERNAL_HEATER_CONSUMPTION_YEAR":     {Tags: []string{"A448", "A449"}, Unit: "kWh"},
	"ENERGY_PRODUCTION_TOTAL_YEAR":         {Tags: []string{"A458", "A459"}, Unit: "kWh"},
	"HEATING_ENERGY_PRODUCTION_YEAR":       {Tags: []string{"A452", "A453"}, Unit: "kWh"},
	"HOT_WATER_ENERGY_PRODUCTION_YEAR":     {Tags: []string{"A454", "A455"}, Unit: "kWh"},
	"POOL_ENERGY_PRODUCTION_YEAR":          {Tags: []string{"A456", "A457"}, Unit: "kWh"},
	"COOLING_ENERGY_YEAR":                  {Tags: []string{"A462", "A463"}, Unit: "kWh"},
	"COP_TOTAL_SYSTEM_LAST12M":             {Tags: []string{"A435"}},
	"COOLING_ENERGY_LAST12M":               {Tags: []string{"A436"}, Unit: "kWh"},

	// Heating circuit
	"TEMPERATURE_HEATING":                    {Tags: []string{"A30"}, Unit: "°C"},
	"TEMPERATURE_HEATING_DEMAND":             {Tags: []string{"A31"}, Unit: "°C"},
	"TEMPERATURE_HEATING_ADJUST":             {Tags: []string{"I263"}, Unit: "K", Writeable: true},
	"TEMPERATURE_HEATING_HYSTERESIS":         {Tags: []string{"A61"}, Unit: "K", Writeable: true},
	"TEMPERATURE_HEATING_PV_CHANGE":          {Tags: []string{"A682"}, Unit: "K", Writeable: true},
	"TEMPERATURE_HEATING_HC_OUTDOOR_1H":      {Tags: []string{"A90"}, Unit: "°C"},
	"TEMPERATURE_HEATING_HC_LIMIT":           {Tags: []string{"A93"}, Unit: "°C", Writeable: true},
	"TEMPERATURE_HEATING_HC_TARGET":          {Tags: []string{"A94"}, Unit: "°C", Writeable: true},
	"TEMPERATURE_HEATING_HC_OUTDOOR_NORM":    {Tags: []string{"A91"}, Unit: "°C", Writeable: true},
	"TEMPERATURE_HEATING_HC_NORM":            {Tags: []string{"A92"}, Unit: "°C", Writeable: true},
	"TEMPERATURE_HEATING_HC_RESULT":          {Tags: []string{"A96"}, Unit: "°C"},
	"TEMPERATURE_HEATING_ANTIFREEZE":         {Tags: []string{"A1231"}, Unit: "°C", Writeable: true},
	"TEMPERATURE_HEATING_SETPOINTLIMIT_MAX":  {Tags: []string{"A95"}, Unit: "°C", Writeable: true},
	"TEMPERATURE_HEATING_SETPOINTLIMIT_MIN":  {Tags: []string{"A104"}, Unit: "°C", Writeable: true},
	"TEMPERATURE_HEATING_POWLIMIT_MAX":       {Tags: []string{"A504"}, Unit: "%", Writeable: true},
	"TEMPERATURE_HEATING_POWLIMIT_MIN":       {Tags: []string{"A505"}, Unit: "%", Writeable: true},
	"TEMPERATURE_HEATING_SGREADY_STATUS4":    {Tags: []string{"A967"}, Unit: "°C", Writeable: true},
	"TEMPERATURE_HEATING_MODE":               {Tags: []string{"I265"}, Writeable: true, Codec: heatModeCodec{}},
	"TEMPERATURE_HEATING_SETPOINT":           {Tags: []string{"A32"}, Unit: "°C", Writeable: true},
	"TEMPERATURE_HEATING_SETPOINT_FOR_SOLAR": {Tags: []string{"A1710"}, Unit: "°C", Writeable: true},
	"ADAPT_HEATING":                          {Tags: []string{"I263"}, Writeable: true},

	// Cooling circuit
	"TEMPERATURE_COOLING":               {Tags: []string{"A33"}, Unit: "°C"},
	"TEMPERATURE_COOLING_DEMAND":        {Tags: []string{"A34"}, Unit: "°C"},
	"TEMPERATURE_COOLING_SETPOINT":      {Tags: []string{"A109"}, Unit: "°C", Writeable: true},
	"TEMPERATURE_COOLING_OUTDOOR_LIMIT": {Tags: []string{"A108"}, Unit: "°C", Writeable: true},
	"TEMPERATURE_COOLING_HYSTERESIS":    {Tags: []string{"A107"}, Unit: "K", Writeable: true},
	"TEMPERATURE_COOLING_PV_CHANGE":     {Tags: []string{"A683"}, Unit: "K", Writeable: true},

	// Hot water
	"TEMPERATURE_WATER":              {Tags: []string{"A19"}, Unit: "°C"},
	"TEMPERATURE_WATER_DEMAND":       {Tags: []string{"A37"}, Unit: "°C"},
	"TEMPERATURE_WATER_SETPOINT":     {Tags: []string{"A38"}, Unit: "°C", Writeable: true},
	"TEMPERATURE_WATER_HYSTERESIS":   {Tags: []string{"A139"}, Unit: "K", Writeable: true},
	"TEMPERATURE_WATER_PV_CHANGE":    {Tags: []string{"A684"}, Unit: "K", Writeable: true},
	"TEMPERATURE_WATER_DISINFECTION": {Tags: []string{"A168"}, Unit: "°C", Writeable: true},
	"SCHEDULE_WATER_DISINFECTION_START_TIME": {
		Tags: []string{"I505", "I506"}, Writeable: true, Codec: timeHHMMCodec{},
	},
	"SCHEDULE_WATER_DISINFECTION_DURATION":      {Tags: []string{"I507"}, Unit: "h", Writeable: true},
	"SCHEDULE_WATER_DISINFECTION_1MO":           {Tags: []string{"D153"}, Writeable: true},
	"SCHEDULE_WATER_DISINFECTION_2TU":           {Tags: []string{"D154"}, Writeable: true},
	"SCHEDULE_WATER_DISINFECTION_3WE":           {Tags: []string{"D155"}, Writeable: true},
	"SCHEDULE_WATER_DISINFECTION_4TH":           {Tags: []string{"D156"}, Writeable: true},
	"SCHEDULE_WATER_DISINFECTION_5FR":           {Tags: []string{"D157"}, Writeable: true},
	"SCHEDULE_WATER_DISINFECTION_6SA":           {Tags: []string{"D158"}, Writeable: true},
	"SCHEDULE_WATER_DISINFECTION_7SU":           {Tags: []string{"D159"}, Writeable: true},
	"TEMPERATURE_WATER_SETPOINT_FOR_SOLAR":      {Tags: []string{"A169"}, Unit: "°C", Writeable: true},
	"TEMPERATURE_WATER_CHANGEOVER_EXT_HOTWATER": {Tags: []string{"A1019"}, Unit: "°C", Writeable: true},
	"TEMPERATURE_WATER_CHANGEOVER_EXT_FLOW":     {Tags: []string{"A1249"}, Unit: "°C", Writeable: true},
	"TEMPERATURE_WATER_POWLIMIT_MAX":            {Tags: []string{"A171"}, Unit: "%", Writeable: true},
	"TEMPERATURE_WATER_POWLIMIT_MIN":            {Tags: []string{"A172"}, Unit: "%", Writeable: true},

	// Pool
	"TEMPERATURE_POOL":                 {Tags: []string{"A20"}, Unit: "°C"},
	"TEMPERATURE_POOL_DEMAND":          {Tags: []string{"A40"}, Unit: "°C"},
	"TEMPERATURE_POOL_SETPOINT":        {Tags: []string{"A41"}, Unit: "°C", Writeable: true},
	"TEMPERATURE_POOL_HYSTERESIS":      {Tags: []string{"A174"}, Unit: "K", Writeable: true},
	"TEMPERATURE_POOL_PV_CHANGE":       {Tags: []string{"A685"}, Unit: "K", Writeable: true},
	"TEMPERATURE_POOL_HC_OUTDOOR_1H":   {Tags: []string{"A746"}, Unit: "°C"},
	"TEMPERATURE_POOL_HC_LIMIT":        {Tags: []string{"A749"}, Unit: "°C", Writeable: true},
	"TEMPERATURE_POOL_HC_TARGET":       {Tags: []string{"A750"}, Unit: "°C", Writeable: true},
	"TEMPERATURE_POOL_HC_OUTDOOR_NORM": {Tags: []string{"A747"}, Unit: "°C", Writeable: true},
	"TEMPERATURE_POOL_HC_NORM":         {Tags: []string{"A748"}, Unit: "°C", Writeable: true},
	"TEMPERATURE_POOL_HC_RESULT":       {Tags: []string{"A752"}, Unit: "°C"},

	// Mixing circuits
	"TEMPERATURE_MIX1":                 {Tags: []string{"A44"}, Unit: "°C"},
	"TEMPERATURE_MIX1_DEMAND":          {Tags: []string{"A45"}, Unit: "°C"},
	"TEMPERATURE_MIX1_ADJUST":          {Tags: []string{"I776"}, Unit: "K", Writeable: true},
	"TEMPERATURE_MIX1_PV_CHANGE":       {Tags: []string{"A1094"}, Unit: "K", Writeable: true},
	"TEMPERATURE_MIX1_PERCENT":         {Tags: []string{"A510"}, Unit: "%"},
	"TEMPERATURE_MIX1_HC_LIMIT":        {Tags: []string{"A276"}, Unit: "°C", Writeable: true},
	"TEMPERATURE_MIX1_HC_TARGET":       {Tags: []string{"A277"}, Unit: "°C", Writeable: true},
	"TEMPERATURE_MIX1_HC_OUTDOOR_NORM": {Tags: []string{"A274"}, Unit: "°C", Writeable: true},
	"TEMPERATURE_MIX1_HC_HEATING_NORM": {Tags: []string{"A275"}, Unit: "°C", Writeable: true},
	"TEMPERATURE_MIX1_HC_MAX":          {Tags: []string{"A278"}, Unit: "°C", Writeable: true},
	"TEMPERATURE_MIX2":                 {Tags: []string{"A46"}, Unit: "°C"},
	"TEMPERATURE_MIX2_DEMAND":          {Tags: []string{"A47"}, Unit: "°C"},
	"TEMPERATURE_MIX2_ADJUST":          {Tags: []string{"I896"}, Unit: "K", Writeable: true},
	"TEMPERATURE_MIX2_PV_CHANGE":       {Tags: []string{"A1095"}, Unit: "K", Writeable: true},
	"TEMPERATURE_MIX2_PERCENT":         {Tags: []string{"A512"}, Unit: "%"},
	"TEMPERATURE_MIX2_HC_LIMIT":        {Tags: []string{"A322"}, Unit: "°C", Writeable: true},
	"TEMPERATURE_MIX2_HC_TARGET":       {Tags: []string{"A323"}, Unit: "°C", Writeable: true},
	"TEMPERATURE_MIX2_HC_OUTDOOR_NORM": {Tags: []string{"A320"}, Unit: "°C", Writeable: true},
	"TEMPERATURE_MIX2_HC_HEATING_NORM": {Tags: []string{"A321"}, Unit: "°C", Writeable: true},
	"TEMPERATURE_MIX2_HC_MAX":          {Tags: []string{"A324"}, Unit: "°C", Writeable: true},
	"TEMPERATURE_MIX3":                 {Tags: []string{"A48"}, Unit: "°C"},
	"TEMPERATURE_MIX3_DEMAND":          {Tags: []string{"A49"}, Unit: "°C"},
	"TEMPERATURE_MIX3_ADJUST":          {Tags: []string{"I1017"}, Unit: "K", Writeable: true},
	"TEMPERATURE_MIX3_PV_CHANGE":       {Tags: []string{"A1096"}, Unit: "K", Writeable: true},
	"TEMPERATURE_MIX3_PERCENT":         {Tags: []string{"A514"}, Unit: "%"},
	"TEMPERATURE_MIX3_HC_LIMIT":        {Tags: []string{"A368"}, Unit: "°C", Writeable: true},
	"TEMPERATURE_MIX3_HC_TARGET":       {Tags: []string{"A369"}, Unit: "°C", Writeable: true},
	"TEMPERATURE_MIX3_HC_OUTDOOR_NORM": {Tags: []string{"A366"}, Unit: "°C", Writeable: true},
	"TEMPERATURE_MIX3_HC_HEATING_NORM": {Tags: []string{"A367"}, Unit: "°C", Writeable: true},
	"TEMPERATURE_MIX3_HC_MAX":          {Tags: []string{"A370"}, Unit: "°C", Writeable: true},

	// Pump and compressor loads
	"PERCENT_HEAT_CIRC_PUMP": {Tags: []string{"A51"}, Unit: "%"},
	"PERCENT_SOURCE_PUMP":    {Tags: []string{"A52"}, Unit: "%"},
	"PERCENT_COMPRESSOR":     {Tags: []string{"A58"}, Unit: "%"},

	// Device info, clock and counters
	"VERSION_CONTROLLER": {Tags: []string{"I1", "I2"}, Codec: fwVersionCodec{}},
	"VERSION_BIOS":       {Tags: []string{"I3"}, Codec: biosVersionCodec{}},
	"DATE_DAY":           {Tags: []string{"I5"}},
	"DATE_MONTH":         {Tags: []string{"I6"}},
	"DATE_YEAR":          {Tags: []string{"I7"}},
	"TIME_HOUR":          {Tags: []string{"I8"}},
	"TIME_MINUTE":        {Tags: []string{"I9"}},

	"OPERATING_HOURS_COMPRESSOR_1":     {Tags: []string{"I10"}, Unit: "h"},
	"OPERATING_HOURS_COMPRESSOR_2":     {Tags: []string{"I14"}, Unit: "h"},
	"OPERATING_HOURS_CIRCULATION_PUMP": {Tags: []string{"I18"}, Unit: "h"},
	"OPERATING_HOURS_SOURCE_PUMP":      {Tags: []string{"I20"}, Unit: "h"},
	"OPERATING_HOURS_SOLAR":            {Tags: []string{"I22"}, Unit: "h"},

	"INFO_SERIES": {Tags: []string{"I105"}, Codec: seriesCodec{}},
	"INFO_ID":     {Tags: []string{"I110"}, Codec: idCodec{}},
	"INFO_SERIAL": {Tags: []string{"I114", "I115"}, Codec: serialCodec{}},

	// Operation enable switches
	"ENABLE_HEATING":         {Tags: []string{"I30"}, Writeable: true, Codec: boolCodec{}},
	"ENABLE_COOLING":         {Tags: []string{"I31"}, Writeable: true, Codec: boolCodec{}},
	"ENABLE_WARMWATER":       {Tags: []string{"I32"}, Writeable: true, Codec: boolCodec{}},
	"ENABLE_POOL":            {Tags: []string{"I33"}, Writeable: true, Codec: boolCodec{}},
	"ENABLE_EXTERNAL_HEATER": {Tags: []string{"I35"}, Writeable: true, Codec: boolCodec{}},
	"ENABLE_MIXING1":         {Tags: []string{"I37"}, Writeable: true, Codec: boolCodec{}},
	"ENABLE_MIXING2":         {Tags: []string{"I38"}, Writeable: true, Codec: boolCodec{}},
	"ENABLE_MIXING3":         {Tags: []string{"I39"}, Writeable: true, Codec: boolCodec{}},
	"ENABLE_PV":              {Tags: []string{"I41"}, Writeable: true, Codec: boolCodec{}},

	// Holiday mode
	"HOLIDAY_ENABLED": {Tags: []string{"D420"}, Writeable: true},
	"HOLIDAY_START_TIME": {
		Tags: []string{"I1254", "I1253", "I1252", "I1250", "I1251"},
		Writeable: true, Codec: datetimeCodec{},
	},
	"HOLIDAY_END_TIME": {
		Tags: []string{"I1259", "I1258", "I1257", "I1255", "I1256"},
		Writeable: true, Codec: datetimeCodec{},
	},

	// Packed status word I51
	"STATE_SOURCEPUMP":      {Tags: []string{"I51"}, Bit: bit(0)},
	"STATE_HEATINGPUMP":     {Tags: []string{"I51"}, Bit: bit(1)},
	"STATE_EVD":             {Tags: []string{"I51"}, Bit: bit(2)},
	"STATE_COMPRESSOR":      {Tags: []string{"I51"}, Bit: bit(3)},
	"STATE_COMPRESSOR2":     {Tags: []string{"I51"}, Bit: bit(4)},
	"STATE_EXTERNAL_HEATER": {Tags: []string{"I51"}, Bit: bit(5)},
	"STATE_ALARM":           {Tags: []string{"I51"}, Bit: bit(6)},
	"STATE_COOLING":         {Tags: []string{"I51"}, Bit: bit(7)},
	"STATE_WATER":           {Tags: []string{"I51"}, Bit: bit(8)},
	"STATE_POOL":            {Tags: []string{"I51"}, Bit: bit(9)},
	"STATE_SOLAR":           {Tags: []string{"I51"}, Bit: bit(10)},
	"STATE_COOLING4WAY":     {Tags: []string{"I51"}, Bit: bit(11)},

	// Translated bitfields
	"ALARM_BITS":        {Tags: []string{"I52"}, Bits: []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, Translate: true},
	"INTERRUPTION_BITS": {Tags: []string{"I53"}, Bits: []int{0, 1, 2, 3, 4, 5, 6}, Translate: true},

	// Demand states
	"STATE_SERVICE":  {Tags: []string{"I135"}},
	"STATUS_HEATING": {Tags: []string{"I137"}, Codec: statusCodec{}},
	"STATUS_COOLING": {Tags: []string{"I138"}, Codec: statusCodec{}},
	"STATUS_WATER":   {Tags: []string{"I139"}, Codec: statusCodec{}},
	"STATUS_POOL":    {Tags: []string{"I140"}, Codec: statusCodec{}},
	"STATUS_SOLAR":   {Tags: []string{"I141"}, Codec: statusCodec{}},
	"STATUS_HEATING_CIRCULATION_PUMP": {
		Tags: []string{"I1270"}, Writeable: true, Codec: statusCodec{rw: true},
	},
	"STATUS_SOLAR_CIRCULATION_PUMP": {
		Tags: []string{"I1287"}, Writeable: true, Codec: statusCodec{rw: true},
	},
	"STATUS_BUFFER_TANK_CIRCULATION_PUMP": {
		Tags: []string{"I1291"}, Writeable: true, Codec: statusCodec{rw: true},
	},
	"STATUS_COMPRESSOR": {Tags: []string{"I1307"}, Codec: statusCodec{}},

	// Manual overrides
	"MANUAL_SOURCEPUMP": {Tags: []string{"I1281"}},
	"MANUAL_SOLARPUMP1": {Tags: []string{"I1287"}},
	"MANUAL_SOLARPUMP2": {Tags: []string{"I1289"}},
	"MANUAL_VALVE":      {Tags: []string{"I1293"}},
	"MANUAL_POOLVALVE":  {Tags: []string{"I1295"}},
	"MANUAL_COOLVALVE":  {Tags: []string{"I1297"}},
	"MANUAL_4WAYVALVE":  {Tags: []string{"I1299"}},
	"MANUAL_MULTIEXT":   {Tags: []string{"I1319"}},

	// Digital circulation pump states
	"STATE_BLOCKING_TIME":                       {Tags: []string{"D71"}},
	"STATE_TEST_RUN":                            {Tags: []string{"D581"}},
	"STATE_HEATING_CIRCULATION_PUMP":            {Tags: []string{"D425"}},
	"STATE_BUFFERTANK_CIRCULATION_PUMP":         {Tags: []string{"D377"}},
	"STATE_POOL_CIRCULATION_PUMP":               {Tags: []string{"D549"}},
	"STATE_MIX1_CIRCULATION_PUMP":               {Tags: []string{"D248"}},
	"STATE_MIX2_CIRCULATION_PUMP":               {Tags: []string{"D291"}},
	"STATE_MIX3_CIRCULATION_PUMP":               {Tags: []string{"D334"}},
	"PERMANENT_HEATING_CIRCULATION_PUMP_WINTER": {Tags: []string{"D1103"}, Writeable: true},
	"PERMANENT_HEATING_CIRCULATION_PUMP_SUMMER": {Tags: []string{"D1104"}, Writeable: true},

	// Source pump
	"SOURCE_PUMP_CAPTURE_TEMPERATURE": {Tags: []string{"A479"}, Writeable: true},

	// SG-Ready
	"SGREADY_SWITCH":                {Tags: []string{"D795"}, Writeable: true},
	"SGREADY_SG1_EXTERN_OFF_SWITCH": {Tags: []string{"D796"}},
	"SGREADY_SG2_NORMAL":            {Tags: []string{"D797"}},
	"SGREADY_SG3_SETPOINT_CHANGE":   {Tags: []string{"D798"}},
	"SGREADY_SG4_FORCE_RUN":         {Tags: []string{"D799"}},
}
