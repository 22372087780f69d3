package vssetup

import "vsprereq/internal/com"

// Class and capability identifiers of the Setup Configuration object
// model. Names follow the foreign documentation.
var (
	CLSID_SetupConfiguration = com.MustGUID("{177F0C4A-1CD3-4DE7-A32C-71DBBB9FA36D}")

	IID_ISetupConfiguration  = com.MustGUID("{42843719-DB4C-46C2-8E7C-64F1816EFD5B}")
	IID_ISetupConfiguration2 = com.MustGUID("{26AAB78C-4A60-49D6-AF3B-3C35BC93365D}")
	IID_IEnumSetupInstances  = com.MustGUID("{6380BCFF-41D3-4B2E-8B2E-BF8A6810C848}")
	IID_ISetupInstance       = com.MustGUID("{B41463C3-8866-43B5-BC33-2B0676F7F42E}")
	IID_ISetupInstance2      = com.MustGUID("{89143C9A-05AF-49B0-B717-72E218A2185C}")

	IID_ISetupPackageReference  = com.MustGUID("{DA8D8A16-B2B6-4487-A2F1-594CCCCD6BF5}")
	IID_ISetupProductReference  = com.MustGUID("{A170B5EF-223D-492B-B2D4-945032980685}")
	IID_ISetupProductReference2 = com.MustGUID("{279A5DB3-7503-444B-B34D-308F961B9A06}")

	IID_ISetupErrorState  = com.MustGUID("{46DCCD94-A287-476A-851E-DFBC2FFDBC20}")
	IID_ISetupErrorState2 = com.MustGUID("{9871385B-CA69-48F2-BC1F-7A37CBF0B1EF}")
	IID_ISetupErrorState3 = com.MustGUID("{290019AD-28E2-46D5-9DE5-DA4B6BCF8057}")
	IID_ISetupErrorInfo   = com.MustGUID("{2A2F3292-958E-4905-B36E-013BE84E27AB}")

	IID_ISetupFailedPackageReference  = com.MustGUID("{E73559CD-7003-4022-B134-27DC650B280F}")
	IID_ISetupFailedPackageReference2 = com.MustGUID("{0FAD873E-E874-42E3-B268-4FE2F096B9CA}")
	IID_ISetupFailedPackageReference3 = com.MustGUID("{EBC3AE68-AD15-44E8-8377-39DBF0316F6C}")

	IID_ISetupPropertyStore   = com.MustGUID("{C601C175-A3BE-44BC-91F6-4568D230FC83}")
	IID_ISetupInstanceCatalog = com.MustGUID("{9AD8E40F-39A2-40F1-BF64-0A6C50DD9EEB}")
)
