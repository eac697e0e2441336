package locale

var hindi = map[Key]string{
	KeyHeaderStoreName:         "हर्षिता जनरल स्टोर",
	KeyHeaderTagline:           "जनरल स्टोर",
	KeyHeaderSearchPlaceholder: "उत्पाद खोजें...",
	KeyHeaderProducts:          "उत्पाद",
	KeyHeaderCategories:        "श्रेणियां",
	KeyHeaderAbout:             "हमारे बारे में",
	KeyHeaderContact:           "संपर्क",
	KeyHeaderFreePickup:        "स्टोर से मुफ्त पिकअप",
	KeyHeaderCall:              "कॉल करें",

	KeyHomeWelcome:          "आपका स्वागत है",
	KeyHomeHeroDescription:  "दैनिक आवश्यकताओं और अन्य सामानों के लिए आपका विश्वसनीय पड़ोसी स्टोर। गुणवत्तापूर्ण उत्पाद, बेहतरीन कीमतें, और मित्रवत सेवा।",
	KeyHomeShopNow:          "अभी खरीदारी करें",
	KeyHomeBrowseCategories: "श्रेणियां देखें",
	KeyHomeRating:           "रेटिंग",
	KeyHomeTrustedStore:     "विश्वसनीय स्टोर",
	KeyHomeFreePickup:       "मुफ्त पिकअप",

	KeyFeaturesWhatsappTitle: "आसान व्हाट्सऐप ऑर्डरिंग",
	KeyFeaturesWhatsappDesc:  "कार्ट में आइटम जोड़ें और तुरंत प्रोसेसिंग के लिए व्हाट्सऐप के माध्यम से अपना ऑर्डर भेजें।",
	KeyFeaturesPickupTitle:   "त्वरित पिकअप",
	KeyFeaturesPickupDesc:    "ऑनलाइन ऑर्डर करें और हमारे स्टोर से पिकअप करें। कोई डिलीवरी चार्ज नहीं, केवल सुविधा।",
	KeyFeaturesLocalTitle:    "स्थानीय स्टोर",
	KeyFeaturesLocalDesc:     "गुणवत्तापूर्ण उत्पादों और व्यक्तिगत सेवा के साथ आपके समुदाय का समर्थन।",

	KeyProductsFeatured:          "विशेष उत्पाद",
	KeyProductsFeaturedDesc:      "आपके लिए चुने गए आइटम",
	KeyProductsViewAll:           "सभी देखें",
	KeyProductsShopByCategory:    "श्रेणी के अनुसार खरीदारी",
	KeyProductsCategoryDesc:      "वही खोजें जिसकी आपको जरूरत है",
	KeyProductsAllProducts:       "सभी उत्पाद",
	KeyProductsProducts:          "उत्पाद",
	KeyProductsAvailable:         "उपलब्ध",
	KeyProductsSearchPlaceholder: "उत्पाद खोजें...",
	KeyProductsCategory:          "श्रेणी",
	KeyProductsAllCategories:     "सभी श्रेणियां",
	KeyProductsNewest:            "नवीनतम",
	KeyProductsNameAz:            "नाम अ-ज्ञ",
	KeyProductsPriceLowHigh:      "कीमत: कम-ज्यादा",
	KeyProductsPriceHighLow:      "कीमत: ज्यादा-कम",
	KeyProductsClearFilter:       "फिल्टर साफ़ करें",
	KeyProductsNoProducts:        "आपके मापदंड से मेल खाने वाले कोई उत्पाद नहीं मिले",
	KeyProductsClearFilters:      "सभी फिल्टर साफ़ करें",
	KeyProductsAddToCart:         "कार्ट में जोड़ें",
	KeyProductsOutOfStock:        "स्टॉक में नहीं",
	KeyProductsLowStock:          "कम स्टॉक",
	KeyProductsOff:               "छूट",

	KeyCategoryBackToCategories:    "श्रेणियों पर वापस",
	KeyCategoryFilterBySubcategory: "उप-श्रेणी के अनुसार फिल्टर करें:",
	KeyCategoryAll:                 "सभी",
	KeyCategoryNoProductsFound:     "कोई उत्पाद नहीं मिला",
	KeyCategoryNoProductsDesc:      "इस श्रेणी में कोई उत्पाद नहीं मिला।",
	KeyCategoryNoProductsSubDesc:   "में कोई उत्पाद नहीं मिला",
	KeyCategoryShowAllProducts:     "सभी दिखाएं",
	KeyCategoryBrowseAllProducts:   "सभी उत्पाद देखें",

	KeyCartMyCart:        "मेरा कार्ट",
	KeyCartItems:         "आइटम",
	KeyCartEmptyTitle:    "आपका कार्ट खाली है",
	KeyCartEmptyDesc:     "शुरुआत करने के लिए कुछ उत्पाद जोड़ें",
	KeyCartStartShopping: "खरीदारी शुरू करें",
	KeyCartTotal:         "कुल",
	KeyCartOrderSummary:  "ऑर्डर सारांश",
	KeyCartDelivery:      "डिलीवरी",
	KeyCartFree:          "मुफ्त",
	KeyCartPlaceOrder:    "व्हाट्सऐप के माध्यम से ऑर्डर दें",
	KeyCartPickupInfo:    "केवल स्टोर पिकअप",
	KeyCartPickupDesc:    "ऑर्डर स्टोर पिकअप के लिए हैं। कोई डिलीवरी चार्ज नहीं।",
	KeyCartCashPickup:    "पिकअप पर नकद",
	KeyCartCashDesc:      "स्टोर से अपना ऑर्डर लेते समय भुगतान।",

	KeyCustomerInfo:               "ग्राहक जानकारी",
	KeyCustomerFullName:           "पूरा नाम",
	KeyCustomerPhone:              "फोन नंबर",
	KeyCustomerAddress:            "पता",
	KeyCustomerNamePlaceholder:    "अपना पूरा नाम दर्ज करें",
	KeyCustomerPhonePlaceholder:   "अपना फोन नंबर दर्ज करें",
	KeyCustomerAddressPlaceholder: "अपना पूरा पता दर्ज करें",
	KeyCustomerSendOrder:          "व्हाट्सऐप पर ऑर्डर भेजें",

	KeyStoreVisitTitle:    "हमारे स्टोर पर आएं",
	KeyStoreVisitDesc:     "आकर हमारे गुणवत्तापूर्ण उत्पादों का अनुभव करें",
	KeyStoreLocation:      "स्टोर का स्थान",
	KeyStoreLocationDesc:  "हमारे स्टोर पर आएं",
	KeyStoreHours:         "स्टोर का समय",
	KeyStoreHoursDesc:     "हम आपके लिए खुले हैं",
	KeyStoreAddress:       "आपके स्टोर का पता",
	KeyStoreMonSat:        "सोम-शनि: सुबह 9-रात 8",
	KeyStoreSun:           "रवि: सुबह 10-शाम 6",
	KeyStoreGetDirections: "दिशा निर्देश पाएं",

	KeyCommonBack:    "वापस",
	KeyCommonAdd:     "जोड़ें",
	KeyCommonLoading: "लोड हो रहा है...",
	KeyCommonError:   "त्रुटि",
	KeyCommonSuccess: "सफलता",
	KeyCommonCancel:  "रद्द करें",
	KeyCommonSave:    "सेव करें",
	KeyCommonEdit:    "संपादित करें",
	KeyCommonDelete:  "हटाएं",
	KeyCommonClose:   "बंद करें",

	KeyToastAddedToCart:     "कार्ट में जोड़ा गया",
	KeyToastProductAdded:    "कार्ट में जोड़ा गया",
	KeyToastOutOfStockTitle: "स्टॉक में नहीं",
	KeyToastOutOfStockDesc:  "यह उत्पाद वर्तमान में स्टॉक में नहीं है।",
	KeyToastOrderSent:       "ऑर्डर भेजा गया!",
	KeyToastOrderSentDesc:   "आपका ऑर्डर व्हाट्सऐप के माध्यम से भेजा गया है।",

	KeyAboutTitle:            "हर्षिता जनरल स्टोर के बारे में",
	KeyAboutSubtitle:         "आपका विश्वसनीय पड़ोसी स्टोर जो स्थापना के बाद से गुणवत्तापूर्ण उत्पादों और असाधारण सेवा के साथ समुदाय की सेवा कर रहा है।",
	KeyAboutOurStory:         "हमारी कहानी",
	KeyAboutStoryP1:          "हर्षिता जनरल स्टोर हमारे समुदाय का आधारस्तंभ रहा है, जो क्षेत्र के परिवारों और व्यवसायों को आवश्यक वस्तुओं और सेवाओं की आपूर्ति करता है। जो एक छोटे पारिवारिक व्यवसाय के रूप में शुरू हुआ था, वह एक विश्वसनीय स्थानीय संस्थान बन गया है।",
	KeyAboutStoryP2:          "हम दैनिक आवश्यकताओं से लेकर विशेष वस्तुओं तक, प्रतिस्पर्धी कीमतों पर गुणवत्तापूर्ण उत्पादों की एक विस्तृत श्रृंखला प्रदान करने पर गर्व करते हैं। ग्राहक संतुष्टि और सामुदायिक सेवा के प्रति हमारी प्रतिबद्धता हमारे सभी कार्यों को प्रेरित करती है।",
	KeyAboutStoryP3:          "आज, हम अपने ग्राहकों की बेहतर सेवा के लिए प्रौद्योगिकी को अपना रहे हैं, जबकि व्यक्तिगत स्पर्श और सामुदायिक भावना को बनाए रख रहे हैं जो हमेशा हमारे स्टोर को परिभाषित करती है।",
	KeyAboutOurValues:        "हमारे मूल्य",
	KeyAboutCommunityFirst:   "समुदाय पहले",
	KeyAboutCommunityDesc:    "हम अपने स्थानीय समुदाय का समर्थन करने और अपने ग्राहकों के साथ स्थायी संबंध बनाने में विश्वास करते हैं।",
	KeyAboutQualityAssurance: "गुणवत्ता आश्वासन",
	KeyAboutQualityDesc:      "हमारे द्वारा स्टॉक किया जाने वाला हर उत्पाद गुणवत्ता और मूल्य के लिए हमारे उच्च मानकों को पूरा करने के लिए सावधानीपूर्वक चुना जाता है।",
	KeyAboutCustomerCare:     "ग्राहक देखभाल",
	KeyAboutCustomerDesc:     "आपकी संतुष्टि हमारी प्राथमिकता है। हम यह सुनिश्चित करने के लिए अतिरिक्त मील जाते हैं कि आपका अनुभव बेहतरीन हो।",

	KeyContactTitle:              "हमसे संपर्क करें",
	KeyContactSubtitle:           "किसी भी प्रश्न, फीडबैक या सहायता के लिए हमसे संपर्क करें। हम यहां मदद के लिए हैं!",
	KeyContactStoreInfo:          "स्टोर की जानकारी",
	KeyContactQuickActions:       "त्वरित कार्य",
	KeyContactCallNow:            "अभी कॉल करें",
	KeyContactWhatsappUs:         "व्हाट्सऐप करें",
	KeyContactSendEmail:          "ईमेल भेजें",
	KeyContactSendMessage:        "हमें संदेश भेजें",
	KeyContactMessage:            "संदेश",
	KeyContactMessagePlaceholder: "हम आपकी कैसे मदद कर सकते हैं?",
	KeyContactSendViaWhatsapp:    "व्हाट्सऐप के माध्यम से संदेश भेजें",
	KeyContactFindUs:             "हमें खोजें",
	KeyContactMapIntegration:     "यहां मैप एकीकरण जोड़ा जा सकता है",

	KeyOrderClosing: "कृपया मेरे ऑर्डर की पुष्टि करें और पिकअप विवरण प्रदान करें।\nधन्यवाद!",
}
