package plumelib

// matplotlib plasma色表（256级）
var Plasma = ListedColormap{
	{R: 0.050383, G: 0.029803, B: 0.527975},
	{R: 0.063536, G: 0.028426, B: 0.533124},
	{R: 0.075353, G: 0.027206, B: 0.538007},
	{R: 0.086222, G: 0.026125, B: 0.542658},
	{R: 0.096379, G: 0.025165, B: 0.547103},
	{R: 0.105980, G: 0.024309, B: 0.551368},
	{R: 0.115124, G: 0.023556, B: 0.555468},
	{R: 0.123903, G: 0.022878, B: 0.559423},
	{R: 0.132381, G: 0.022258, B: 0.563250},
	{R: 0.140603, G: 0.021687, B: 0.566959},
	{R: 0.148607, G: 0.021154, B: 0.570562},
	{R: 0.156421, G: 0.020651, B: 0.574065},
	{R: 0.164070, G: 0.020171, B: 0.577478},
	{R: 0.171574, G: 0.019706, B: 0.580806},
	{R: 0.178950, G: 0.019252, B: 0.584054},
	{R: 0.186213, G: 0.018803, B: 0.587228},
	{R: 0.193374, G: 0.018354, B: 0.590330},
	{R: 0.200445, G: 0.017902, B: 0.593364},
	{R: 0.207435, G: 0.017442, B: 0.596333},
	{R: 0.214350, G: 0.016973, B: 0.599239},
	{R: 0.221197, G: 0.016497, B: 0.602083},
	{R: 0.227983, G: 0.016007, B: 0.604867},
	{R: 0.234715, G: 0.015502, B: 0.607592},
	{R: 0.241396, G: 0.014979, B: 0.610259},
	{R: 0.248032, G: 0.014439, B: 0.612868},
	{R: 0.254627, G: 0.013882, B: 0.615419},
	{R: 0.261183, G: 0.013308, B: 0.617911},
	{R: 0.267703, G: 0.012716, B: 0.620346},
	{R: 0.274191, G: 0.012109, B: 0.622722},
	{R: 0.280648, G: 0.011488, B: 0.625038},
	{R: 0.287076, G: 0.010855, B: 0.627295},
	{R: 0.293478, G: 0.010213, B: 0.629490},
	{R: 0.299855, G: 0.009561, B: 0.631624},
	{R: 0.306210, G: 0.008902, B: 0.633694},
	{R: 0.312543, G: 0.008239, B: 0.635700},
	{R: 0.318856, G: 0.007576, B: 0.637640},
	{R: 0.325150, G: 0.006915, B: 0.639512},
	{R: 0.331426, G: 0.006261, B: 0.641316},
	{R: 0.337683, G: 0.005618, B: 0.643049},
	{R: 0.343925, G: 0.004991, B: 0.644710},
	{R: 0.350150, G: 0.004382, B: 0.646298},
	{R: 0.356359, G: 0.003798, B: 0.647810},
	{R: 0.362553, G: 0.003243, B: 0.649245},
	{R: 0.368733, G: 0.002724, B: 0.650601},
	{R: 0.374897, G: 0.002245, B: 0.651876},
	{R: 0.381047, G: 0.001814, B: 0.653068},
	{R: 0.387183, G: 0.001434, B: 0.654177},
	{R: 0.393304, G: 0.001114, B: 0.655199},
	{R: 0.399411, G: 0.000859, B: 0.656133},
	{R: 0.405503, G: 0.000678, B: 0.656977},
	{R: 0.411580, G: 0.000577, B: 0.657730},
	{R: 0.417642, G: 0.000564, B: 0.658390},
	{R: 0.423689, G: 0.000646, B: 0.658956},
	{R: 0.429719, G: 0.000831, B: 0.659425},
	{R: 0.435734, G: 0.001127, B: 0.659797},
	{R: 0.441732, G: 0.001540, B: 0.660069},
	{R: 0.447714, G: 0.002080, B: 0.660240},
	{R: 0.453677, G: 0.002755, B: 0.660310},
	{R: 0.459623, G: 0.003574, B: 0.660277},
	{R: 0.465550, G: 0.004545, B: 0.660139},
	{R: 0.471457, G: 0.005678, B: 0.659897},
	{R: 0.477344, G: 0.006980, B: 0.659549},
	{R: 0.483210, G: 0.008460, B: 0.659095},
	{R: 0.489055, G: 0.010127, B: 0.658534},
	{R: 0.494877, G: 0.011990, B: 0.657865},
	{R: 0.500678, G: 0.014055, B: 0.657088},
	{R: 0.506454, G: 0.016333, B: 0.656202},
	{R: 0.512206, G: 0.018833, B: 0.655209},
	{R: 0.517933, G: 0.021563, B: 0.654109},
	{R: 0.523633, G: 0.024532, B: 0.652901},
	{R: 0.529306, G: 0.027747, B: 0.651586},
	{R: 0.534952, G: 0.031217, B: 0.650165},
	{R: 0.540570, G: 0.034950, B: 0.648640},
	{R: 0.546157, G: 0.038954, B: 0.647010},
	{R: 0.551715, G: 0.043136, B: 0.645277},
	{R: 0.557243, G: 0.047331, B: 0.643443},
	{R: 0.562738, G: 0.051545, B: 0.641509},
	{R: 0.568201, G: 0.055778, B: 0.639477},
	{R: 0.573632, G: 0.060028, B: 0.637349},
	{R: 0.579029, G: 0.064296, B: 0.635126},
	{R: 0.584391, G: 0.068579, B: 0.632812},
	{R: 0.589719, G: 0.072878, B: 0.630408},
	{R: 0.595011, G: 0.077190, B: 0.627917},
	{R: 0.600266, G: 0.081516, B: 0.625342},
	{R: 0.605485, G: 0.085854, B: 0.622686},
	{R: 0.610667, G: 0.090204, B: 0.619951},
	{R: 0.615812, G: 0.094564, B: 0.617140},
	{R: 0.620919, G: 0.098934, B: 0.614257},
	{R: 0.625987, G: 0.103312, B: 0.611305},
	{R: 0.631017, G: 0.107699, B: 0.608287},
	{R: 0.636008, G: 0.112092, B: 0.605205},
	{R: 0.640959, G: 0.116492, B: 0.602065},
	{R: 0.645872, G: 0.120898, B: 0.598867},
	{R: 0.650746, G: 0.125309, B: 0.595617},
	{R: 0.655580, G: 0.129725, B: 0.592317},
	{R: 0.660374, G: 0.134144, B: 0.588971},
	{R: 0.665129, G: 0.138566, B: 0.585582},
	{R: 0.669845, G: 0.142992, B: 0.582154},
	{R: 0.674522, G: 0.147419, B: 0.578688},
	{R: 0.679160, G: 0.151848, B: 0.575189},
	{R: 0.683758, G: 0.156278, B: 0.571660},
	{R: 0.688318, G: 0.160709, B: 0.568103},
	{R: 0.692840, G: 0.165141, B: 0.564522},
	{R: 0.697324, G: 0.169573, B: 0.560919},
	{R: 0.701769, G: 0.174005, B: 0.557296},
	{R: 0.706178, G: 0.178437, B: 0.553657},
	{R: 0.710549, G: 0.182868, B: 0.550004},
	{R: 0.714883, G: 0.187299, B: 0.546338},
	{R: 0.719181, G: 0.191729, B: 0.542663},
	{R: 0.723444, G: 0.196158, B: 0.538981},
	{R: 0.727670, G: 0.200586, B: 0.535293},
	{R: 0.731862, G: 0.205013, B: 0.531601},
	{R: 0.736019, G: 0.209439, B: 0.527908},
	{R: 0.740143, G: 0.213864, B: 0.524216},
	{R: 0.744232, G: 0.218288, B: 0.520524},
	{R: 0.748289, G: 0.222711, B: 0.516834},
	{R: 0.752312, G: 0.227133, B: 0.513149},
	{R: 0.756304, G: 0.231555, B: 0.509468},
	{R: 0.760264, G: 0.235976, B: 0.505794},
	{R: 0.764193, G: 0.240396, B: 0.502126},
	{R: 0.768090, G: 0.244817, B: 0.498465},
	{R: 0.771958, G: 0.249237, B: 0.494813},
	{R: 0.775796, G: 0.253658, B: 0.491171},
	{R: 0.779604, G: 0.258078, B: 0.487539},
	{R: 0.783383, G: 0.262500, B: 0.483918},
	{R: 0.787133, G: 0.266922, B: 0.480307},
	{R: 0.790855, G: 0.271345, B: 0.476706},
	{R: 0.794549, G: 0.275770, B: 0.473117},
	{R: 0.798216, G: 0.280197, B: 0.469538},
	{R: 0.801855, G: 0.284626, B: 0.465971},
	{R: 0.805467, G: 0.289057, B: 0.462415},
	{R: 0.809052, G: 0.293491, B: 0.458870},
	{R: 0.812612, G: 0.297928, B: 0.455338},
	{R: 0.816144, G: 0.302368, B: 0.451816},
	{R: 0.819651, G: 0.306812, B: 0.448306},
	{R: 0.823132, G: 0.311261, B: 0.444806},
	{R: 0.826588, G: 0.315714, B: 0.441316},
	{R: 0.830018, G: 0.320172, B: 0.437836},
	{R: 0.833422, G: 0.324635, B: 0.434366},
	{R: 0.836801, G: 0.329105, B: 0.430905},
	{R: 0.840155, G: 0.333580, B: 0.427455},
	{R: 0.843484, G: 0.338062, B: 0.424013},
	{R: 0.846788, G: 0.342551, B: 0.420579},
	{R: 0.850066, G: 0.347048, B: 0.417153},
	{R: 0.853319, G: 0.351553, B: 0.413734},
	{R: 0.856547, G: 0.356066, B: 0.410322},
	{R: 0.859750, G: 0.360588, B: 0.406917},
	{R: 0.862927, G: 0.365119, B: 0.403519},
	{R: 0.866078, G: 0.369660, B: 0.400126},
	{R: 0.869203, G: 0.374212, B: 0.396738},
	{R: 0.872303, G: 0.378774, B: 0.393355},
	{R: 0.875376, G: 0.383347, B: 0.389976},
	{R: 0.878423, G: 0.387932, B: 0.386600},
	{R: 0.881443, G: 0.392529, B: 0.383229},
	{R: 0.884436, G: 0.397139, B: 0.379860},
	{R: 0.887402, G: 0.401762, B: 0.376494},
	{R: 0.890340, G: 0.406398, B: 0.373130},
	{R: 0.893250, G: 0.411048, B: 0.369768},
	{R: 0.896131, G: 0.415712, B: 0.366407},
	{R: 0.898984, G: 0.420392, B: 0.363047},
	{R: 0.901807, G: 0.425087, B: 0.359688},
	{R: 0.904601, G: 0.429797, B: 0.356329},
	{R: 0.907365, G: 0.434524, B: 0.352970},
	{R: 0.910098, G: 0.439268, B: 0.349610},
	{R: 0.912800, G: 0.444029, B: 0.346251},
	{R: 0.915471, G: 0.448807, B: 0.342890},
	{R: 0.918109, G: 0.453603, B: 0.339529},
	{R: 0.920714, G: 0.458417, B: 0.336166},
	{R: 0.923287, G: 0.463251, B: 0.332801},
	{R: 0.925825, G: 0.468103, B: 0.329435},
	{R: 0.928329, G: 0.472975, B: 0.326067},
	{R: 0.930798, G: 0.477867, B: 0.322697},
	{R: 0.933232, G: 0.482780, B: 0.319325},
	{R: 0.935630, G: 0.487712, B: 0.315952},
	{R: 0.937990, G: 0.492667, B: 0.312575},
	{R: 0.940313, G: 0.497642, B: 0.309197},
	{R: 0.942598, G: 0.502639, B: 0.305816},
	{R: 0.944844, G: 0.507658, B: 0.302433},
	{R: 0.947051, G: 0.512699, B: 0.299049},
	{R: 0.949217, G: 0.517763, B: 0.295662},
	{R: 0.951344, G: 0.522850, B: 0.292275},
	{R: 0.953428, G: 0.527960, B: 0.288883},
	{R: 0.955470, G: 0.533093, B: 0.285490},
	{R: 0.957469, G: 0.538250, B: 0.282096},
	{R: 0.959424, G: 0.543431, B: 0.278701},
	{R: 0.961336, G: 0.548636, B: 0.275305},
	{R: 0.963203, G: 0.553865, B: 0.271909},
	{R: 0.965024, G: 0.559118, B: 0.268513},
	{R: 0.966798, G: 0.564396, B: 0.265118},
	{R: 0.968526, G: 0.569700, B: 0.261721},
	{R: 0.970205, G: 0.575028, B: 0.258325},
	{R: 0.971835, G: 0.580382, B: 0.254931},
	{R: 0.973416, G: 0.585761, B: 0.251540},
	{R: 0.974947, G: 0.591165, B: 0.248151},
	{R: 0.976428, G: 0.596595, B: 0.244767},
	{R: 0.977856, G: 0.602051, B: 0.241387},
	{R: 0.979233, G: 0.607532, B: 0.238013},
	{R: 0.980556, G: 0.613039, B: 0.234646},
	{R: 0.981826, G: 0.618572, B: 0.231287},
	{R: 0.983041, G: 0.624131, B: 0.227937},
	{R: 0.984199, G: 0.629718, B: 0.224595},
	{R: 0.985301, G: 0.635330, B: 0.221265},
	{R: 0.986345, G: 0.640969, B: 0.217948},
	{R: 0.987332, G: 0.646633, B: 0.214648},
	{R: 0.988260, G: 0.652325, B: 0.211364},
	{R: 0.989128, G: 0.658043, B: 0.208100},
	{R: 0.989935, G: 0.663787, B: 0.204859},
	{R: 0.990681, G: 0.669558, B: 0.201642},
	{R: 0.991365, G: 0.675355, B: 0.198453},
	{R: 0.991985, G: 0.681179, B: 0.195295},
	{R: 0.992541, G: 0.687030, B: 0.192170},
	{R: 0.993032, G: 0.692907, B: 0.189084},
	{R: 0.993456, G: 0.698810, B: 0.186041},
	{R: 0.993814, G: 0.704741, B: 0.183043},
	{R: 0.994103, G: 0.710698, B: 0.180097},
	{R: 0.994324, G: 0.716681, B: 0.177208},
	{R: 0.994474, G: 0.722691, B: 0.174381},
	{R: 0.994553, G: 0.728728, B: 0.171622},
	{R: 0.994561, G: 0.734791, B: 0.168938},
	{R: 0.994495, G: 0.740880, B: 0.166335},
	{R: 0.994355, G: 0.746995, B: 0.163821},
	{R: 0.994141, G: 0.753137, B: 0.161404},
	{R: 0.993851, G: 0.759304, B: 0.159092},
	{R: 0.993482, G: 0.765499, B: 0.156891},
	{R: 0.993033, G: 0.771720, B: 0.154808},
	{R: 0.992505, G: 0.777967, B: 0.152855},
	{R: 0.991897, G: 0.784239, B: 0.151042},
	{R: 0.991209, G: 0.790537, B: 0.149377},
	{R: 0.990439, G: 0.796859, B: 0.147870},
	{R: 0.989587, G: 0.803205, B: 0.146529},
	{R: 0.988648, G: 0.809579, B: 0.145357},
	{R: 0.987621, G: 0.815978, B: 0.144363},
	{R: 0.986509, G: 0.822401, B: 0.143557},
	{R: 0.985314, G: 0.828846, B: 0.142945},
	{R: 0.984031, G: 0.835315, B: 0.142528},
	{R: 0.982653, G: 0.841812, B: 0.142303},
	{R: 0.981190, G: 0.848329, B: 0.142279},
	{R: 0.979644, G: 0.854866, B: 0.142453},
	{R: 0.977995, G: 0.861432, B: 0.142808},
	{R: 0.976265, G: 0.868016, B: 0.143351},
	{R: 0.974443, G: 0.874622, B: 0.144061},
	{R: 0.972530, G: 0.881250, B: 0.144923},
	{R: 0.970533, G: 0.887896, B: 0.145919},
	{R: 0.968443, G: 0.894564, B: 0.147014},
	{R: 0.966271, G: 0.901249, B: 0.148180},
	{R: 0.964021, G: 0.907950, B: 0.149370},
	{R: 0.961681, G: 0.914672, B: 0.150520},
	{R: 0.959276, G: 0.921407, B: 0.151566},
	{R: 0.956808, G: 0.928152, B: 0.152409},
	{R: 0.954287, G: 0.934908, B: 0.152921},
	{R: 0.951726, G: 0.941671, B: 0.152925},
	{R: 0.949151, G: 0.948435, B: 0.152178},
	{R: 0.946602, G: 0.955190, B: 0.150328},
	{R: 0.944152, G: 0.961916, B: 0.146861},
	{R: 0.941896, G: 0.968590, B: 0.140956},
	{R: 0.940015, G: 0.975158, B: 0.131326},
}
