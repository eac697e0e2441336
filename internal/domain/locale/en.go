package locale

// english holds the default language strings.
var english = map[Key]string{
	KeyHeaderStoreName:         "Harshita General Store",
	KeyHeaderTagline:           "General Store",
	KeyHeaderSearchPlaceholder: "Search for products...",
	KeyHeaderProducts:          "Products",
	KeyHeaderCategories:        "Categories",
	KeyHeaderAbout:             "About",
	KeyHeaderContact:           "Contact",
	KeyHeaderFreePickup:        "Free pickup from store",
	KeyHeaderCall:              "Call",

	KeyHomeWelcome:          "Welcome to",
	KeyHomeHeroDescription:  "Your trusted neighborhood store for all daily essentials and more. Quality products, great prices, and friendly service.",
	KeyHomeShopNow:          "Shop Now",
	KeyHomeBrowseCategories: "Browse Categories",
	KeyHomeRating:           "Rating",
	KeyHomeTrustedStore:     "Trusted Store",
	KeyHomeFreePickup:       "Free Pickup",

	KeyFeaturesWhatsappTitle: "Easy WhatsApp Ordering",
	KeyFeaturesWhatsappDesc:  "Add items to cart and send your order directly via WhatsApp for quick processing.",
	KeyFeaturesPickupTitle:   "Quick Pickup",
	KeyFeaturesPickupDesc:    "Order online and pick up from our store. No delivery charges, just convenience.",
	KeyFeaturesLocalTitle:    "Local Store",
	KeyFeaturesLocalDesc:     "Supporting your community with quality products and personal service.",

	KeyProductsFeatured:          "Featured Products",
	KeyProductsFeaturedDesc:      "Handpicked items just for you",
	KeyProductsViewAll:           "View All",
	KeyProductsShopByCategory:    "Shop by Category",
	KeyProductsCategoryDesc:      "Find exactly what you need",
	KeyProductsAllProducts:       "All Products",
	KeyProductsProducts:          "products",
	KeyProductsAvailable:         "available",
	KeyProductsSearchPlaceholder: "Search products...",
	KeyProductsCategory:          "Category",
	KeyProductsAllCategories:     "All Categories",
	KeyProductsNewest:            "Newest",
	KeyProductsNameAz:            "Name A-Z",
	KeyProductsPriceLowHigh:      "Price: Low-High",
	KeyProductsPriceHighLow:      "Price: High-Low",
	KeyProductsClearFilter:       "Clear Filter",
	KeyProductsNoProducts:        "No products found matching your criteria",
	KeyProductsClearFilters:      "Clear All Filters",
	KeyProductsAddToCart:         "Add to Cart",
	KeyProductsOutOfStock:        "Out of Stock",
	KeyProductsLowStock:          "Low Stock",
	KeyProductsOff:               "OFF",

	KeyCategoryBackToCategories:    "Back to Categories",
	KeyCategoryFilterBySubcategory: "Filter by Subcategory:",
	KeyCategoryAll:                 "All",
	KeyCategoryNoProductsFound:     "No Products Found",
	KeyCategoryNoProductsDesc:      "No products found in this category.",
	KeyCategoryNoProductsSubDesc:   "No products found in",
	KeyCategoryShowAllProducts:     "Show All",
	KeyCategoryBrowseAllProducts:   "Browse All Products",

	KeyCartMyCart:        "My Cart",
	KeyCartItems:         "items",
	KeyCartEmptyTitle:    "Your cart is empty",
	KeyCartEmptyDesc:     "Add some products to get started",
	KeyCartStartShopping: "Start Shopping",
	KeyCartTotal:         "Total",
	KeyCartOrderSummary:  "Order Summary",
	KeyCartDelivery:      "Delivery",
	KeyCartFree:          "FREE",
	KeyCartPlaceOrder:    "Place Order via WhatsApp",
	KeyCartPickupInfo:    "Store Pickup Only",
	KeyCartPickupDesc:    "Orders are for in-store pickup. No delivery charges.",
	KeyCartCashPickup:    "Cash on Pickup",
	KeyCartCashDesc:      "Payment when collecting your order from store.",

	KeyCustomerInfo:               "Customer Information",
	KeyCustomerFullName:           "Full Name",
	KeyCustomerPhone:              "Phone Number",
	KeyCustomerAddress:            "Address",
	KeyCustomerNamePlaceholder:    "Enter your full name",
	KeyCustomerPhonePlaceholder:   "Enter your phone number",
	KeyCustomerAddressPlaceholder: "Enter your complete address",
	KeyCustomerSendOrder:          "Send Order to WhatsApp",

	KeyStoreVisitTitle:    "Visit Our Store",
	KeyStoreVisitDesc:     "Come and experience our quality products in person",
	KeyStoreLocation:      "Store Location",
	KeyStoreLocationDesc:  "Visit us at our store",
	KeyStoreHours:         "Store Hours",
	KeyStoreHoursDesc:     "We're open for you",
	KeyStoreAddress:       "Your Store Address",
	KeyStoreMonSat:        "Mon-Sat: 9AM-8PM",
	KeyStoreSun:           "Sun: 10AM-6PM",
	KeyStoreGetDirections: "Get Directions",

	KeyCommonBack:    "Back",
	KeyCommonAdd:     "ADD",
	KeyCommonLoading: "Loading...",
	KeyCommonError:   "Error",
	KeyCommonSuccess: "Success",
	KeyCommonCancel:  "Cancel",
	KeyCommonSave:    "Save",
	KeyCommonEdit:    "Edit",
	KeyCommonDelete:  "Delete",
	KeyCommonClose:   "Close",

	KeyToastAddedToCart:     "Added to Cart",
	KeyToastProductAdded:    "added to cart",
	KeyToastOutOfStockTitle: "Out of Stock",
	KeyToastOutOfStockDesc:  "This product is currently out of stock.",
	KeyToastOrderSent:       "Order Sent!",
	KeyToastOrderSentDesc:   "Your order has been sent via WhatsApp.",

	KeyAboutTitle:            "About Harshita General Store",
	KeyAboutSubtitle:         "Your trusted neighborhood store serving the community with quality products and exceptional service since our establishment.",
	KeyAboutOurStory:         "Our Story",
	KeyAboutStoryP1:          "Harshita General Store has been a cornerstone of our community, providing essential goods and services to families and businesses in the area. What started as a small family business has grown into a trusted local institution.",
	KeyAboutStoryP2:          "We pride ourselves on offering a wide range of quality products at competitive prices, from daily essentials to specialty items. Our commitment to customer satisfaction and community service drives everything we do.",
	KeyAboutStoryP3:          "Today, we're embracing technology to better serve our customers while maintaining the personal touch and community spirit that has always defined our store.",
	KeyAboutOurValues:        "Our Values",
	KeyAboutCommunityFirst:   "Community First",
	KeyAboutCommunityDesc:    "We believe in supporting our local community and building lasting relationships with our customers.",
	KeyAboutQualityAssurance: "Quality Assurance",
	KeyAboutQualityDesc:      "Every product we stock is carefully selected to meet our high standards for quality and value.",
	KeyAboutCustomerCare:     "Customer Care",
	KeyAboutCustomerDesc:     "Your satisfaction is our priority. We go the extra mile to ensure you have a great experience.",

	KeyContactTitle:              "Contact Us",
	KeyContactSubtitle:           "Get in touch with us for any questions, feedback, or assistance. We're here to help!",
	KeyContactStoreInfo:          "Store Information",
	KeyContactQuickActions:       "Quick Actions",
	KeyContactCallNow:            "Call Us Now",
	KeyContactWhatsappUs:         "WhatsApp Us",
	KeyContactSendEmail:          "Send Email",
	KeyContactSendMessage:        "Send us a Message",
	KeyContactMessage:            "Message",
	KeyContactMessagePlaceholder: "How can we help you?",
	KeyContactSendViaWhatsapp:    "Send Message via WhatsApp",
	KeyContactFindUs:             "Find Us",
	KeyContactMapIntegration:     "Map integration can be added here",

	KeyOrderClosing: "Please confirm my order and share pickup details.\nThank you!",
}
